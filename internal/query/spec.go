// Package query implements the task query engine: a pure function from an
// in-memory task snapshot and a query specification to a filtered, sorted,
// limited view plus summary statistics. The engine performs no I/O, never
// mutates its input, and takes the clock as an argument, so it is safe to
// call from any number of concurrent callers.
package query

import (
	"github.com/jordanhale/taskdeck/internal/models"
)

// SortKey selects the primary sort key. Wire values match the original
// query-string parameters.
type SortKey string

const (
	SortCreated  SortKey = "created_at"
	SortDueDate  SortKey = "due_date"
	SortPriority SortKey = "priority"
	SortTitle    SortKey = "title"
	SortCategory SortKey = "category"
)

// SortOrder directs the sort. When unset, date keys default to descending
// (newest first) and priority/title/category default to ascending. That
// default is part of the contract and must not change between releases.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Spec is a query specification. Every filter field is optional; supplied
// filters are ANDed together. A nil Limit means unlimited, a zero Limit
// yields an empty result.
type Spec struct {
	Status      *models.TaskStatus
	Category    *models.TaskCategory
	Priority    *int
	Search      string
	OverdueOnly bool
	SortBy      SortKey
	SortOrder   SortOrder
	Limit       *int
}

var validSortKeys = map[SortKey]bool{
	SortCreated:  true,
	SortDueDate:  true,
	SortPriority: true,
	SortTitle:    true,
	SortCategory: true,
}

// withDefaults fills in the documented defaults for sort key and order.
func (s Spec) withDefaults() Spec {
	if s.SortBy == "" {
		s.SortBy = SortCreated
	}
	if s.SortOrder == "" {
		switch s.SortBy {
		case SortCreated, SortDueDate:
			s.SortOrder = OrderDesc
		default:
			s.SortOrder = OrderAsc
		}
	}
	return s
}

// validate rejects unrecognized enumeration values and out-of-range numeric
// parameters before any filtering begins. Invalid filters are never
// silently ignored.
func (s Spec) validate() error {
	if s.Status != nil && !s.Status.IsValid() {
		return models.Invalid("status", "unknown status %q", string(*s.Status))
	}
	if s.Category != nil && !s.Category.IsValid() {
		return models.Invalid("category", "unknown category %q", string(*s.Category))
	}
	if s.Priority != nil && (*s.Priority < models.MinPriority || *s.Priority > models.MaxPriority) {
		return models.Invalid("priority", "priority must be between %d and %d, got %d",
			models.MinPriority, models.MaxPriority, *s.Priority)
	}
	if !validSortKeys[s.SortBy] {
		return models.Invalid("sort_by", "unknown sort key %q", string(s.SortBy))
	}
	if s.SortOrder != OrderAsc && s.SortOrder != OrderDesc {
		return models.Invalid("sort_order", "sort order must be %q or %q", OrderAsc, OrderDesc)
	}
	if s.Limit != nil && *s.Limit < 0 {
		return models.Invalid("limit", "limit must not be negative, got %d", *s.Limit)
	}
	return nil
}
