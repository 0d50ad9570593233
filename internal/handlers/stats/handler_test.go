package stats_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reservo/infras/otel/mocks"
	statsMocks "reservo/internal/domains/stats/mocks"
	"reservo/internal/domains/stats/model/dto"
	"reservo/internal/handlers/stats"
	"reservo/shared/failure"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func TestGetDailyStats(t *testing.T) {
	daily := dto.DailyStatsResponse{
		Date:              "2026-10-15",
		TotalReservations: 3,
		TotalAccepted:     2,
		TotalHeadcount:    26,
		Bookings:          dto.BookingStats{Count: 2, Accepted: 1, Headcount: 6},
		PrivateReservations: dto.PrivateReservationStats{
			Count:             1,
			Accepted:          1,
			HeadcountEstimate: 20,
		},
	}

	tests := []struct {
		name            string
		query           string
		mock            func(svc *statsMocks.MockStatsService)
		expectedCode    int
		expectedMessage string
	}{
		{
			name:  "date in the past is allowed",
			query: "?date=2026-10-15",
			mock: func(svc *statsMocks.MockStatsService) {
				svc.EXPECT().Daily(gomock.Any(), "2026-10-15").Return(daily, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:            "missing date",
			query:           "",
			expectedCode:    http.StatusUnprocessableEntity,
			expectedMessage: "The date field is required.",
		},
		{
			name:            "malformed date",
			query:           "?date=15-10-2026",
			expectedCode:    http.StatusUnprocessableEntity,
			expectedMessage: "The date must be a valid date in YYYY-MM-DD format.",
		},
		{
			name:  "store failure",
			query: "?date=2026-10-15",
			mock: func(svc *statsMocks.MockStatsService) {
				svc.EXPECT().Daily(gomock.Any(), "2026-10-15").Return(dto.DailyStatsResponse{}, failure.Storage(errors.New("timeout")))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := statsMocks.NewMockStatsService(ctrl)

			if tt.mock != nil {
				tt.mock(svc)
			}

			handler := stats.New(svc, mocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats/daily"+tt.query, nil))

			assert.Equal(t, tt.expectedCode, rec.Code)

			var env envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, env.Message)
			}

			if tt.expectedCode == http.StatusOK {
				assert.JSONEq(t, `{
					"date": "2026-10-15",
					"total_reservations": 3,
					"total_accepted": 2,
					"total_headcount": 26,
					"bookings": {"count": 2, "accepted": 1, "headcount": 6},
					"private_reservations": {"count": 1, "accepted": 1, "headcount_estimate": 20}
				}`, string(env.Data))
			}
		})
	}
}
