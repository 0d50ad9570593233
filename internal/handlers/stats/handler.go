package stats

import (
	"net/http"
	"reservo/infras/otel"
	"reservo/internal/domains/stats/model/dto"
	"reservo/internal/domains/stats/service"
	"reservo/shared/constant"
	"reservo/shared/validator"
	"reservo/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Stats
	otel    otel.Otel
}

func New(service service.Stats, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/stats", func(routerGroup chi.Router) {
		routerGroup.Get("/daily", handler.GetDailyStats)
	})
}

// GetDailyStats aggregates both reservation kinds for one date.
// @Summary Daily stats
// @Description Counts, accepted counts and headcounts for a date. Private reservations contribute an estimated headcount.
// @Tags Stats
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope{data=dto.DailyStatsResponse}
// @Failure 422 {object} response.Envelope
// @Router /api/stats/daily [get]
func (handler *Handler) GetDailyStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDailyStats")
	defer scope.End()

	req := dto.DailyStatsRequest{Date: r.URL.Query().Get(constant.RequestParamDate)}
	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	stats, err := handler.service.Daily(ctx, req.Date)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, "", stats)
}
