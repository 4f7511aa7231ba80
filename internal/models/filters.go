package models

// Filters holds the applied name constraints of a listing. Empty fields mean no constraint.
type Filters struct {
	FirstName string
	LastName  string
}

// IsActive reports whether at least one constraint is set.
func (f Filters) IsActive() bool {
	return f.FirstName != "" || f.LastName != ""
}
