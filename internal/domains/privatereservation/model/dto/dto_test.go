package dto_test

import (
	"reservo/internal/domains/privatereservation/model"
	"reservo/internal/domains/privatereservation/model/dto"
	"reservo/internal/domains/reservation"
	"reservo/shared/constant"
	"reservo/shared/timezone"
	"reservo/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() dto.CreatePrivateReservationRequest {
	return dto.CreatePrivateReservationRequest{
		Date:        timezone.Today().Format(constant.DateFormat),
		Email:       "events@example.com",
		EventType:   model.EventTypeBirthday,
		PeopleRange: model.PeopleRangeUnder10,
		Budget:      model.BudgetUnder1000,
	}
}

func TestCreatePrivateReservationRequest_Validation(t *testing.T) {
	long := strings.Repeat("a", 2001)
	exact := strings.Repeat("a", 2000)

	tests := []struct {
		name            string
		mutate          func(r *dto.CreatePrivateReservationRequest)
		expectedMessage string
	}{
		{name: "valid without message", mutate: func(_ *dto.CreatePrivateReservationRequest) {}},
		{name: "message at the limit", mutate: func(r *dto.CreatePrivateReservationRequest) { r.Message = &exact }},
		{
			name:            "message too long",
			mutate:          func(r *dto.CreatePrivateReservationRequest) { r.Message = &long },
			expectedMessage: "The message cannot exceed 2000 characters.",
		},
		{
			name:            "invalid event type",
			mutate:          func(r *dto.CreatePrivateReservationRequest) { r.EventType = "funeral" },
			expectedMessage: model.MessageInvalidEventType,
		},
		{
			name:            "invalid people range",
			mutate:          func(r *dto.CreatePrivateReservationRequest) { r.PeopleRange = "100plus" },
			expectedMessage: model.MessageInvalidPeopleRange,
		},
		{
			name:            "invalid budget",
			mutate:          func(r *dto.CreatePrivateReservationRequest) { r.Budget = "unlimited" },
			expectedMessage: model.MessageInvalidBudget,
		},
		{
			name:            "past date",
			mutate:          func(r *dto.CreatePrivateReservationRequest) { r.Date = "2020-01-01" },
			expectedMessage: "The reservation date must be today or a future date.",
		},
		{
			name:            "invalid email",
			mutate:          func(r *dto.CreatePrivateReservationRequest) { r.Email = "events.example.com" },
			expectedMessage: "email must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.expectedMessage == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.expectedMessage, err.Error())
		})
	}
}

func TestCreatePrivateReservationRequest_ToModel(t *testing.T) {
	req := validRequest()

	pr, err := req.ToModel()

	require.NoError(t, err)
	assert.Equal(t, reservation.StatusPending, pr.Status)
	assert.Equal(t, req.Date, pr.Date.Format(constant.DateFormat))
	assert.Nil(t, pr.Message)
	assert.False(t, pr.CreatedAt.IsZero())
}

func TestPrivateReservationResponse_FromModel(t *testing.T) {
	message := "Cake at 21:00"
	req := validRequest()
	pr, err := req.ToModel()
	require.NoError(t, err)

	pr.ID = 12
	pr.Message = &message
	pr.Status = reservation.StatusDeclined

	var res dto.PrivateReservationResponse
	res.FromModel(pr)

	assert.Equal(t, int64(12), res.ID)
	assert.Equal(t, &message, res.Message)
	assert.Equal(t, reservation.StatusDeclined, res.Status)
	assert.NotEmpty(t, res.CreatedAt)
}
