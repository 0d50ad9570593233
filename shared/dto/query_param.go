package dto

import (
	"fmt"
	"math"
	"net/http"
	"reservo/shared/constant"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// Sort is one ORDER BY term.
type Sort struct {
	Field string
	Table string
	Dir   string
}

type QueryParams struct {
	Page    int    `json:"page"     validate:"min=1"`
	PerPage int    `json:"per_page" validate:"min=1,max=100"`
	Sorts   []Sort `json:"-"        validate:"-"`
}

// FromRequest populates Page and PerPage from the query string, applying defaults for
// omitted values. Values that are not integers are returned as field errors; range
// checks are left to the validator.
//
//	q := dto.QueryParams{}
//	if errs := q.FromRequest(req); len(errs) > 0 { ... }
func (q *QueryParams) FromRequest(r *http.Request) map[string]string {
	errs := map[string]string{}
	query := r.URL.Query()

	q.Page = constant.DefaultValuePage
	q.PerPage = constant.DefaultValuePerPage

	if page := query.Get(constant.RequestParamPage); page != "" {
		pageInt, err := strconv.Atoi(page)
		if err != nil {
			errs[constant.RequestParamPage] = fmt.Sprintf("%s must be an integer", constant.RequestParamPage)
		} else {
			q.Page = pageInt
		}
	}

	if perPage := query.Get(constant.RequestParamPerPage); perPage != "" {
		perPageInt, err := strconv.Atoi(perPage)
		if err != nil {
			errs[constant.RequestParamPerPage] = fmt.Sprintf("%s must be an integer", constant.RequestParamPerPage)
		} else {
			q.PerPage = perPageInt
		}
	}

	return errs
}

// Offset is the number of rows skipped before the current page. It saturates at
// math.MaxInt instead of wrapping for pages far past the end.
func (q *QueryParams) Offset() int {
	if q.Page <= 1 || q.PerPage <= 0 {
		return 0
	}

	if q.Page-1 > math.MaxInt/q.PerPage {
		return math.MaxInt
	}

	return (q.Page - 1) * q.PerPage
}

// PastEnd reports whether the current page starts after the last of total rows.
func (q *QueryParams) PastEnd(total int) bool {
	if total <= 0 {
		return true
	}

	if q.Page <= 1 || q.PerPage <= 0 {
		return false
	}

	return q.Page-1 > (total-1)/q.PerPage
}

// OrderClause renders the sort terms, or an empty string when there are none.
func (q *QueryParams) OrderClause() string {
	if len(q.Sorts) == 0 {
		return ""
	}

	terms := make([]string, 0, len(q.Sorts))

	for _, sort := range q.Sorts {
		column := sort.Field
		if sort.Table != "" {
			column = sort.Table + "." + sort.Field
		}

		dir := strings.ToUpper(sort.Dir)
		if dir != SortDirDesc {
			dir = SortDirAsc
		}

		terms = append(terms, column+" "+dir)
	}

	return "ORDER BY " + strings.Join(terms, ", ")
}

// Meta is the pagination block of a listing response.
type Meta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

func (m *Meta) FromParams(params QueryParams, total int) {
	m.CurrentPage = params.Page
	m.PerPage = params.PerPage
	m.Total = total

	if total == 0 || params.PerPage <= 0 {
		m.LastPage = 1
	} else {
		m.LastPage = int(math.Ceil(float64(total) / float64(params.PerPage)))
	}
}
