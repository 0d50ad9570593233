package privatereservation_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reservo/infras/otel/mocks"
	prMocks "reservo/internal/domains/privatereservation/mocks"
	"reservo/internal/domains/privatereservation/model"
	"reservo/internal/domains/privatereservation/model/dto"
	"reservo/internal/domains/reservation"
	"reservo/internal/handlers/privatereservation"
	"reservo/shared/constant"
	"reservo/shared/failure"
	"reservo/shared/timezone"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func setup(t *testing.T) (*prMocks.MockPrivateReservationService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := prMocks.NewMockPrivateReservationService(ctrl)
	handler := privatereservation.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(t *testing.T, router http.Handler, method, target, body string) (int, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec.Code, env
}

func tomorrow() string {
	return timezone.Today().AddDate(0, 0, 1).Format(constant.DateFormat)
}

func pendingReservation(id int64) dto.PrivateReservationResponse {
	return dto.PrivateReservationResponse{
		ID:          id,
		Date:        tomorrow(),
		Email:       "host@example.com",
		EventType:   model.EventTypeBirthday,
		PeopleRange: model.PeopleRange10To30,
		Budget:      model.Budget1000To3000,
		Status:      reservation.StatusPending,
	}
}

func TestGetPrivateReservations(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		expectService bool
		expectedCode  int
		expectedField string
	}{
		{name: "no filters", expectService: true, expectedCode: http.StatusOK},
		{name: "event type filter", query: "?event_type=wedding&status=2", expectService: true, expectedCode: http.StatusOK},
		{name: "unknown event type", query: "?event_type=party", expectedCode: http.StatusUnprocessableEntity, expectedField: "event_type"},
		{name: "reversed range", query: "?date_from=2026-05-02&date_to=2026-05-01", expectedCode: http.StatusUnprocessableEntity, expectedField: "date_to"},
		{name: "page zero", query: "?page=0", expectedCode: http.StatusUnprocessableEntity, expectedField: "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)

			if tt.expectService {
				svc.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(dto.GetPrivateReservationsResponse{
					PrivateReservations: []dto.PrivateReservationResponse{pendingReservation(1)},
				}, nil)
			}

			code, env := serve(t, router, http.MethodGet, "/private-reservations"+tt.query, "")

			assert.Equal(t, tt.expectedCode, code)

			if tt.expectedField != "" {
				assert.Contains(t, env.Errors, tt.expectedField)
			}
		})
	}
}

func TestCreatePrivateReservation(t *testing.T) {
	body := func(eventType, peopleRange, budget string) string {
		return `{"date":"` + tomorrow() + `","email":"host@example.com","event_type":"` + eventType +
			`","people_range":"` + peopleRange + `","budget":"` + budget + `","message":"Window table please"}`
	}

	tests := []struct {
		name            string
		body            string
		expectService   bool
		expectedCode    int
		expectedMessage string
	}{
		{
			name:            "valid request",
			body:            body("birthday", "10to30", "1000to3000"),
			expectService:   true,
			expectedCode:    http.StatusCreated,
			expectedMessage: "Private reservation created successfully.",
		},
		{
			name:            "unknown event type",
			body:            body("party", "10to30", "1000to3000"),
			expectedCode:    http.StatusUnprocessableEntity,
			expectedMessage: model.MessageInvalidEventType,
		},
		{
			name:            "unknown people range",
			body:            body("birthday", "5to10", "1000to3000"),
			expectedCode:    http.StatusUnprocessableEntity,
			expectedMessage: model.MessageInvalidPeopleRange,
		},
		{
			name:            "unknown budget",
			body:            body("birthday", "10to30", "priceless"),
			expectedCode:    http.StatusUnprocessableEntity,
			expectedMessage: model.MessageInvalidBudget,
		},
		{
			name:         "invalid email",
			body:         `{"date":"` + tomorrow() + `","email":"host","event_type":"other","people_range":"under10","budget":"under1000"}`,
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)

			if tt.expectService {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(pendingReservation(1), nil)
			}

			code, env := serve(t, router, http.MethodPost, "/private-reservations", tt.body)

			assert.Equal(t, tt.expectedCode, code)

			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, env.Message)
			}
		})
	}
}

func TestGetPrivateReservationByID(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Get(gomock.Any(), int64(12)).Return(pendingReservation(12), nil)

	code, env := serve(t, router, http.MethodGet, "/private-reservations/12", "")

	require.Equal(t, http.StatusOK, code)

	var data dto.PrivateReservationResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(12), data.ID)
	assert.Equal(t, model.EventTypeBirthday, data.EventType)
}

func TestPrivateReservationTransitions(t *testing.T) {
	accepted := pendingReservation(5)
	accepted.Status = reservation.StatusAccepted

	tests := []struct {
		name            string
		path            string
		mock            func(svc *prMocks.MockPrivateReservationService)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "approve pending",
			path: "/private-reservations/5/approve",
			mock: func(svc *prMocks.MockPrivateReservationService) {
				svc.EXPECT().Approve(gomock.Any(), int64(5)).Return(accepted, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Private reservation approved successfully.",
		},
		{
			name: "decline processed",
			path: "/private-reservations/5/decline",
			mock: func(svc *prMocks.MockPrivateReservationService) {
				svc.EXPECT().Decline(gomock.Any(), int64(5)).Return(dto.PrivateReservationResponse{},
					&reservation.ConflictError{Kind: model.Kind, Current: reservation.StatusAccepted})
			},
			expectedCode:    http.StatusConflict,
			expectedMessage: "Private reservation has already been processed. Current status: accepted.",
		},
		{
			name: "approve missing",
			path: "/private-reservations/6/approve",
			mock: func(svc *prMocks.MockPrivateReservationService) {
				svc.EXPECT().Approve(gomock.Any(), int64(6)).Return(dto.PrivateReservationResponse{},
					failure.NotFound(model.Kind.NotFoundMessage()))
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Private reservation not found.",
		},
		{
			name:         "non numeric id",
			path:         "/private-reservations/five/approve",
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)

			if tt.mock != nil {
				tt.mock(svc)
			}

			code, env := serve(t, router, http.MethodPatch, tt.path, "")

			assert.Equal(t, tt.expectedCode, code)

			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, env.Message)
			}
		})
	}
}
