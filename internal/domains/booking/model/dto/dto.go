package dto

import (
	"fmt"
	"reservo/internal/domains/booking/model"
	"reservo/internal/domains/reservation"
	"reservo/shared/constant"
	gDto "reservo/shared/dto"
	gModel "reservo/shared/model"
	"reservo/shared/timezone"
	"strings"
	"time"
)

type CreateBookingRequest struct {
	Date            string `json:"date"             validate:"required,datetime=2006-01-02,today_or_later"`
	Time            string `json:"time"             validate:"required,hhmm"`
	Guests          int    `json:"guests"           validate:"min=1,max=10"`
	ReservationType string `json:"reservation_type" validate:"required,oneof=dining drinks both"`
	Phone           string `json:"phone"            validate:"required,max=50"`
}

func (r *CreateBookingRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"date.today_or_later":    "The reservation date must be today or a future date.",
		"time.hhmm":              "The time must be in HH:MM format (e.g., 18:00).",
		"guests.min":             "At least 1 guest is required.",
		"guests.max":             "Maximum 10 guests allowed per booking.",
		"reservation_type.oneof": model.MessageInvalidReservationType,
	}
}

// ToModel builds a pending booking. The request must already be validated.
func (r *CreateBookingRequest) ToModel() (model.Booking, error) {
	date, err := time.Parse(constant.DateFormat, r.Date)
	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to parse booking date: %w", err)
	}

	now := timezone.Now()

	return model.Booking{
		Date:            date,
		Time:            NormalizeTime(r.Time),
		Guests:          r.Guests,
		ReservationType: r.ReservationType,
		Phone:           r.Phone,
		Status:          reservation.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}, nil
}

// NormalizeTime zero-pads the hour so "9:30" sorts before "18:00".
func NormalizeTime(clock string) string {
	hour, minute, found := strings.Cut(clock, ":")
	if !found || len(hour) != 1 {
		return clock
	}

	return "0" + hour + ":" + minute
}

type BookingResponse struct {
	ID              int64              `json:"id"`
	Date            string             `json:"date"`
	Time            string             `json:"time"`
	Guests          int                `json:"guests"`
	ReservationType string             `json:"reservation_type"`
	Phone           string             `json:"phone"`
	Status          reservation.Status `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Date = model.Date.Format(constant.DateFormat)
	r.Time = model.Time
	r.Guests = model.Guests
	r.ReservationType = model.ReservationType
	r.Phone = model.Phone
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Meta     gDto.Meta         `json:"meta"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, meta gDto.Meta) {
	r.Meta = meta

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
