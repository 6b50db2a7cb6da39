package pagination

import (
	"math"
	"net/url"
	"strconv"
)

const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// Params is a 1-based page request.
type Params struct {
	Page    int
	PerPage int
}

// FromQuery reads page and per_page, falling back to defaults on bad input.
func FromQuery(q url.Values) Params {
	p := Params{Page: 1, PerPage: DefaultPerPage}
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(q.Get("per_page")); err == nil && v > 0 {
		p.PerPage = min(v, MaxPerPage)
	}
	return p
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Page describes where a result slice sits in the full result set.
type Page struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// NewPage computes page metadata for a result of count items out of total.
func NewPage(p Params, total int64, count int) Page {
	page := Page{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(p.PerPage))),
	}
	if count > 0 {
		page.From = p.Offset() + 1
		page.To = p.Offset() + count
	}
	return page
}
