package sl_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/athena/internal/lib/logger/sl"
	"github.com/UnknownOlympus/athena/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer // buffer for log capturing
	testLogger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{}))

	errAttr := sl.Err(assert.AnError)
	testLogger.Warn("expected result:", errAttr)

	assert.Contains(t, logBuf.String(), assert.AnError.Error())
}

func TestFilters(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	testLogger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{}))

	testLogger.Info("search", sl.Filters(models.Filters{FirstName: "Ann"}))

	loggedOutput := logBuf.String()
	assert.Contains(t, loggedOutput, "filters.first_name=Ann")
	assert.Contains(t, loggedOutput, "filters.last_name=\"\"")
}
