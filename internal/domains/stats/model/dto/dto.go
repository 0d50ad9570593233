package dto

import "reservo/internal/domains/stats/model"

type DailyStatsRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

func (r *DailyStatsRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"date.required": "The date field is required.",
		"date.datetime": "The date must be a valid date in YYYY-MM-DD format.",
	}
}

type BookingStats struct {
	Count     int `json:"count"`
	Accepted  int `json:"accepted"`
	Headcount int `json:"headcount"`
}

type PrivateReservationStats struct {
	Count             int `json:"count"`
	Accepted          int `json:"accepted"`
	HeadcountEstimate int `json:"headcount_estimate"`
}

type DailyStatsResponse struct {
	Date                string                  `json:"date"`
	TotalReservations   int                     `json:"total_reservations"`
	TotalAccepted       int                     `json:"total_accepted"`
	TotalHeadcount      int                     `json:"total_headcount"`
	Bookings            BookingStats            `json:"bookings"`
	PrivateReservations PrivateReservationStats `json:"private_reservations"`
}

func (r *DailyStatsResponse) FromTotals(date string, bookings, private model.Totals, ranges []model.PeopleRangeCount) {
	r.Date = date

	r.Bookings = BookingStats{
		Count:     bookings.Count,
		Accepted:  bookings.Accepted,
		Headcount: bookings.Headcount,
	}

	r.PrivateReservations = PrivateReservationStats{
		Count:             private.Count,
		Accepted:          private.Accepted,
		HeadcountEstimate: model.EstimateHeadcount(ranges),
	}

	r.TotalReservations = r.Bookings.Count + r.PrivateReservations.Count
	r.TotalAccepted = r.Bookings.Accepted + r.PrivateReservations.Accepted
	r.TotalHeadcount = r.Bookings.Headcount + r.PrivateReservations.HeadcountEstimate
}
