package reservation

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"reservo/shared/constant"
	"reservo/shared/dto"
	"reservo/shared/failure"
	"reservo/shared/validator"
	"slices"
	"strconv"
	"strings"
)

const (
	messageDateRange = "The end date must be after or equal to the start date."
	messageStatus    = "Invalid status. Must be: 0 (pending), 1 (accepted), or 2 (declined)."
)

// ListQuery holds the filters shared by every reservation listing.
type ListQuery struct {
	Status   *int   `json:"status"    validate:"omitempty,oneof=0 1 2"`
	Date     string `json:"date"      validate:"omitempty,datetime=2006-01-02"`
	DateFrom string `json:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `json:"date_to"   validate:"omitempty,datetime=2006-01-02"`
	Category string `json:"-"         validate:"-"`
	dto.QueryParams
}

func (q *ListQuery) ValidationMessages() map[string]string {
	return map[string]string{
		"status.oneof": messageStatus,
	}
}

// ParseListQuery reads and validates the listing filters for kind. Every problem is
// reported as a 422 field error; nothing here touches the store.
func ParseListQuery(r *http.Request, kind Kind) (ListQuery, error) {
	query := r.URL.Query()
	list := ListQuery{
		Date:     query.Get(constant.RequestParamDate),
		DateFrom: query.Get(constant.RequestParamDateFrom),
		DateTo:   query.Get(constant.RequestParamDateTo),
		Category: query.Get(kind.CategoryField),
	}

	errs := list.QueryParams.FromRequest(r)

	if raw := query.Get(constant.RequestParamStatus); raw != "" {
		status, err := strconv.Atoi(raw)
		if err != nil {
			errs[constant.RequestParamStatus] = "status must be an integer"
		} else {
			list.Status = &status
		}
	}

	mergeFieldErrors(errs, validator.ValidateStruct(&list))

	if list.Category != "" && !slices.Contains(kind.Categories, list.Category) {
		errs[kind.CategoryField] = kind.CategoryMessage
		if kind.CategoryMessage == "" {
			errs[kind.CategoryField] = fmt.Sprintf("%s must be one of %s", kind.CategoryField, strings.Join(kind.Categories, " "))
		}
	}

	_, fromInvalid := errs[constant.RequestParamDateFrom]
	_, toInvalid := errs[constant.RequestParamDateTo]

	// ISO dates compare correctly as strings.
	if list.DateFrom != "" && list.DateTo != "" && !fromInvalid && !toInvalid && list.DateFrom > list.DateTo {
		errs[constant.RequestParamDateTo] = messageDateRange
	}

	if len(errs) > 0 {
		return list, failure.Unprocessable(firstMessage(errs), errs)
	}

	list.Sorts = kind.Sorts

	return list, nil
}

// Filter turns the query into a WHERE clause on kind's table.
func (q ListQuery) Filter(kind Kind) dto.FilterGroup {
	filters := []any{}

	if q.Status != nil {
		filters = append(filters, dto.Filter{Field: constant.FieldStatus, Value: *q.Status, Operator: dto.FilterOperatorEq, Table: kind.Table})
	}

	if q.Date != "" {
		filters = append(filters, dto.Filter{Field: constant.FieldDate, Value: q.Date, Operator: dto.FilterOperatorEq, Table: kind.Table})
	}

	if q.DateFrom != "" {
		filters = append(filters, dto.Filter{
			ArgName:  constant.RequestParamDateFrom,
			Field:    constant.FieldDate,
			Value:    q.DateFrom,
			Operator: dto.FilterOperatorGreaterEq,
			Table:    kind.Table,
		})
	}

	if q.DateTo != "" {
		filters = append(filters, dto.Filter{
			ArgName:  constant.RequestParamDateTo,
			Field:    constant.FieldDate,
			Value:    q.DateTo,
			Operator: dto.FilterOperatorLessEq,
			Table:    kind.Table,
		})
	}

	if q.Category != "" {
		filters = append(filters, dto.Filter{Field: kind.CategoryField, Value: q.Category, Operator: dto.FilterOperatorEq, Table: kind.Table})
	}

	return dto.FilterGroup{Filters: filters, Operator: dto.FilterGroupOperatorAnd}
}

// ListStore is the read side of a reservation repository.
type ListStore[T any] interface {
	Count(ctx context.Context, filter dto.FilterGroup) (int, error)
	GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error)
}

// List returns one page of kind's records in the kind's stable order.
func List[T any](ctx context.Context, store ListStore[T], kind Kind, query ListQuery) ([]T, dto.Meta, error) {
	var meta dto.Meta

	filter := query.Filter(kind)

	total, err := store.Count(ctx, filter)
	if err != nil {
		return nil, meta, fmt.Errorf("failed to count %s: %w", kind.Entity, err)
	}

	params := query.QueryParams
	params.Sorts = kind.Sorts

	models := []T{}
	if !params.PastEnd(total) {
		models, err = store.GetAll(ctx, params, filter)
		if err != nil {
			return nil, meta, fmt.Errorf("failed to list %s: %w", kind.Entity, err)
		}
	}

	meta.FromParams(params, total)

	return models, meta, nil
}

func mergeFieldErrors(dst map[string]string, err error) {
	var f *failure.Failure
	if !errors.As(err, &f) {
		return
	}

	for field, msg := range f.Errors {
		if _, exists := dst[field]; !exists {
			dst[field] = msg
		}
	}
}

// firstMessage picks the message of the alphabetically first field so responses are
// deterministic.
func firstMessage(errs map[string]string) string {
	for _, field := range slices.Sorted(maps.Keys(errs)) {
		return errs[field]
	}

	return ""
}
