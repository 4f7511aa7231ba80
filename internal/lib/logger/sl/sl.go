package sl

import (
	"log/slog"

	"github.com/UnknownOlympus/athena/internal/models"
)

// Err creates a slog.Attr with the given error.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Filters groups the applied name filters under a single "filters" key.
func Filters(f models.Filters) slog.Attr {
	return slog.Group("filters",
		slog.String("first_name", f.FirstName),
		slog.String("last_name", f.LastName),
	)
}
