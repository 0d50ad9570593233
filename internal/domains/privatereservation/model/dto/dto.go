package dto

import (
	"fmt"
	"reservo/internal/domains/privatereservation/model"
	"reservo/internal/domains/reservation"
	"reservo/shared/constant"
	gDto "reservo/shared/dto"
	gModel "reservo/shared/model"
	"reservo/shared/timezone"
	"time"
)

type CreatePrivateReservationRequest struct {
	Date        string  `json:"date"              validate:"required,datetime=2006-01-02,today_or_later"`
	Email       string  `json:"email"             validate:"required,email,max=255"`
	EventType   string  `json:"event_type"        validate:"required,oneof=birthday anniversary corporate wedding other"`
	PeopleRange string  `json:"people_range"      validate:"required,oneof=under10 10to30 30to50 over50"`
	Budget      string  `json:"budget"            validate:"required,oneof=under1000 1000to3000 3000to5000 5000to10000 over10000"`
	Message     *string `json:"message,omitempty" validate:"omitempty,max=2000"`
}

func (r *CreatePrivateReservationRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"date.today_or_later": "The reservation date must be today or a future date.",
		"event_type.oneof":    model.MessageInvalidEventType,
		"people_range.oneof":  model.MessageInvalidPeopleRange,
		"budget.oneof":        model.MessageInvalidBudget,
		"message.max":         "The message cannot exceed 2000 characters.",
	}
}

// ToModel builds a pending private reservation. The request must already be validated.
func (r *CreatePrivateReservationRequest) ToModel() (model.PrivateReservation, error) {
	date, err := time.Parse(constant.DateFormat, r.Date)
	if err != nil {
		return model.PrivateReservation{}, fmt.Errorf("failed to parse reservation date: %w", err)
	}

	now := timezone.Now()

	return model.PrivateReservation{
		Date:        date,
		Email:       r.Email,
		EventType:   r.EventType,
		PeopleRange: r.PeopleRange,
		Budget:      r.Budget,
		Message:     r.Message,
		Status:      reservation.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}, nil
}

type PrivateReservationResponse struct {
	ID          int64              `json:"id"`
	Date        string             `json:"date"`
	Email       string             `json:"email"`
	EventType   string             `json:"event_type"`
	PeopleRange string             `json:"people_range"`
	Budget      string             `json:"budget"`
	Message     *string            `json:"message"`
	Status      reservation.Status `json:"status"`
	gDto.Metadata
}

func (r *PrivateReservationResponse) FromModel(model model.PrivateReservation) {
	r.ID = model.ID
	r.Date = model.Date.Format(constant.DateFormat)
	r.Email = model.Email
	r.EventType = model.EventType
	r.PeopleRange = model.PeopleRange
	r.Budget = model.Budget
	r.Message = model.Message
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetPrivateReservationsResponse struct {
	PrivateReservations []PrivateReservationResponse `json:"private_reservations"`
	Meta                gDto.Meta                    `json:"meta"`
}

func (r *GetPrivateReservationsResponse) FromModels(models []model.PrivateReservation, meta gDto.Meta) {
	r.Meta = meta

	r.PrivateReservations = make([]PrivateReservationResponse, len(models))
	for i, mod := range models {
		r.PrivateReservations[i].FromModel(mod)
	}
}
