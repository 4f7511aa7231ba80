package view

import "github.com/UnknownOlympus/athena/internal/models"

// Body selects what the table body shows.
type Body int

const (
	BodyRows Body = iota
	BodyError
	BodyEmpty
)

// State is an immutable snapshot of a Page.
type State struct {
	Phase          Phase
	FirstNameInput string
	LastNameInput  string
	Filters        models.Filters
	Employees      []models.Employee
	Error          string
	CanSearch      bool
	CanReset       bool
	CanExport      bool
}

// Loading is true only before any request has settled.
func (s State) Loading() bool {
	return s.Phase == PhaseLoading
}

func (s State) Refreshing() bool {
	return s.Phase == PhaseRefreshing
}

// Busy reports whether a request is in flight.
func (s State) Busy() bool {
	return s.Phase == PhaseLoading || s.Phase == PhaseRefreshing
}

func (s State) HasActiveFilters() bool {
	return s.Filters.IsActive()
}

// Body applies the rendering rule: an error wins over the empty message.
func (s State) Body() Body {
	switch {
	case s.Error != "":
		return BodyError
	case len(s.Employees) == 0:
		return BodyEmpty
	default:
		return BodyRows
	}
}

// EmptyMessage depends on whether filters are applied.
func (s State) EmptyMessage() string {
	if s.HasActiveFilters() {
		return EmptyFilteredMessage
	}
	return EmptyMessage
}
