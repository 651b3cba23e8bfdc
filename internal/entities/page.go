// Package entities contains core business entities.
package entities

import "fmt"

// StatusFilter selects rows by their soft-delete state.
type StatusFilter string

const (
	// StatusAll returns active and inactive rows.
	StatusAll StatusFilter = "all"
	// StatusActive returns only rows with IsActive=true.
	StatusActive StatusFilter = "active"
	// StatusInactive returns only soft-deleted rows.
	StatusInactive StatusFilter = "inactive"
)

// ParseStatusFilter validates a raw status query value. Empty input falls
// back to the provided default.
func ParseStatusFilter(raw string, def StatusFilter) (StatusFilter, error) {
	if raw == "" {
		return def, nil
	}
	switch StatusFilter(raw) {
	case StatusAll, StatusActive, StatusInactive:
		return StatusFilter(raw), nil
	}
	return "", fmt.Errorf("%w: status must be all, active or inactive", ErrInvalidArgument)
}

// PageRequest carries pagination parameters. Page and Limit are 1-based.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// Normalize clamps page and limit to their minimums.
func (r *PageRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
}

// Page is one window of rows plus derived pagination metadata.
type Page[T any] struct {
	Data       []T
	Total      int64
	Page       int
	Limit      int
	TotalPages int64
}

// NewPage computes page metadata for a fetched window. An empty result set
// reports page 0 and no pages.
func NewPage[T any](data []T, total int64, req PageRequest) Page[T] {
	p := Page[T]{
		Data:  data,
		Total: total,
		Page:  req.Page,
		Limit: req.Limit,
	}
	if total == 0 {
		p.Data = []T{}
		p.Page = 0
		return p
	}
	p.TotalPages = (total + int64(req.Limit) - 1) / int64(req.Limit)
	return p
}
