package export_test

import (
	"bytes"
	"testing"

	"github.com/UnknownOlympus/athena/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteEmployeesXLSX(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.WriteEmployeesXLSX(&buf, sampleEmployees()))

	book, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(export.XLSXSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, export.XLSXHeader, rows[0])
	assert.Equal(t,
		[]string{"1", "E-001", "Ann", "Lee", "ann.lee@example.com", "+380501112233", "1 Main st", "HR", "Human Resources"},
		rows[1])
	// trailing empty department cells are not returned by GetRows
	assert.Equal(t, []string{"2", "E-002", "Bob", "Stone", "bob@example.com", "555-0100", "2 Side st"}, rows[2])
}

func TestWriteEmployeesXLSX_HeaderOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.WriteEmployeesXLSX(&buf, nil))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(export.XLSXSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
