// Package view implements the employee list page as a state machine.
// It performs no I/O: callers execute the Requests it issues and feed results back through Resolve.
package view

import (
	"strings"

	"github.com/UnknownOlympus/athena/internal/client"
	"github.com/UnknownOlympus/athena/internal/models"
)

// Phase is the fetch state of the page.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseRefreshing
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseRefreshing:
		return "refreshing"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

const (
	EmptyFilteredMessage = "No employees found with the selected filters."
	EmptyMessage         = "No employees available."
)

// Request is one list fetch issued by the page. Seq grows monotonically per page.
type Request struct {
	Seq     uint64
	Filters models.Filters
}

// Page holds typed inputs, applied filters and the last settled result.
// It is not safe for concurrent use.
type Page struct {
	firstNameInput string
	lastNameInput  string
	filters        models.Filters
	employees      []models.Employee
	phase          Phase
	errMsg         string
	seq            uint64
	settled        bool
}

// NewPage returns a page in the loading phase with empty inputs and filters.
func NewPage() *Page {
	return &Page{phase: PhaseLoading, employees: []models.Employee{}}
}

// Start issues the initial request for the unfiltered list.
func (p *Page) Start() Request {
	return p.issue()
}

// SetInput records the typed, not yet submitted, filter text.
func (p *Page) SetInput(firstName, lastName string) {
	p.firstNameInput = firstName
	p.lastNameInput = lastName
}

// CanSearch reports whether either typed field is non-blank.
func (p *Page) CanSearch() bool {
	return strings.TrimSpace(p.firstNameInput) != "" || strings.TrimSpace(p.lastNameInput) != ""
}

// CanReset reports whether typed inputs or applied filters differ from their defaults.
func (p *Page) CanReset() bool {
	return p.firstNameInput != "" || p.lastNameInput != "" || p.filters.IsActive()
}

// Submit applies the trimmed typed values as filters. It is rejected when both fields are blank.
func (p *Page) Submit() (Request, bool) {
	if !p.CanSearch() {
		return Request{}, false
	}

	p.filters = models.Filters{
		FirstName: strings.TrimSpace(p.firstNameInput),
		LastName:  strings.TrimSpace(p.lastNameInput),
	}

	return p.issue(), true
}

// Reset clears typed inputs and filters and refetches the unfiltered list.
func (p *Page) Reset() (Request, bool) {
	if !p.CanReset() {
		return Request{}, false
	}

	p.firstNameInput = ""
	p.lastNameInput = ""
	p.filters = models.Filters{}

	return p.issue(), true
}

func (p *Page) issue() Request {
	p.seq++
	p.errMsg = ""
	if p.settled {
		p.phase = PhaseRefreshing
	} else {
		p.phase = PhaseLoading
	}

	return Request{Seq: p.seq, Filters: p.filters}
}

// Latest returns the sequence number of the most recently issued request.
func (p *Page) Latest() uint64 {
	return p.seq
}

// Resolve applies the outcome of request seq. Results of superseded requests are
// ignored and Resolve reports false.
func (p *Page) Resolve(seq uint64, employees []models.Employee, err error) bool {
	if seq != p.seq {
		return false
	}

	p.settled = true
	if err != nil {
		p.phase = PhaseError
		p.errMsg = client.FailureMessage
		return true
	}

	if employees == nil {
		employees = []models.Employee{}
	}
	p.employees = employees
	p.phase = PhaseSuccess

	return true
}

// CanExport is false while busy, on error, or when the list is empty.
func (p *Page) CanExport() bool {
	return p.phase == PhaseSuccess && len(p.employees) > 0
}

// Employees returns the currently displayed list.
func (p *Page) Employees() []models.Employee {
	return p.employees
}

// State returns a snapshot of the page for rendering.
func (p *Page) State() State {
	employees := make([]models.Employee, len(p.employees))
	copy(employees, p.employees)

	return State{
		Phase:          p.phase,
		FirstNameInput: p.firstNameInput,
		LastNameInput:  p.lastNameInput,
		Filters:        p.filters,
		Employees:      employees,
		Error:          p.errMsg,
		CanSearch:      p.CanSearch(),
		CanReset:       p.CanReset(),
		CanExport:      p.CanExport(),
	}
}
