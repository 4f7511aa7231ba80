package directory

import "time"

// SetClock replaces the store clock for tests.
func (st *Store) SetClock(now func() time.Time) {
	st.now = now
}
