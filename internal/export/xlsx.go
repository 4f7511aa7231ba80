package export

import (
	"fmt"
	"io"

	"github.com/UnknownOlympus/athena/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	XLSXFilename    = "employees.xlsx"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	XLSXSheet       = "Employees"
)

// XLSXHeader lists the workbook columns, in the same order as the XML export.
var XLSXHeader = []string{
	"Id", "Code", "FirstName", "LastName", "Email", "Phone", "Address", "DepartmentCode", "DepartmentDescription",
}

// WriteEmployeesXLSX writes employees to out as a single-sheet workbook.
func WriteEmployeesXLSX(out io.Writer, employees []models.Employee) (err error) {
	book := excelize.NewFile()
	defer func() {
		if closeErr := book.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", closeErr)
		}
	}()

	if err = book.SetSheetName("Sheet1", XLSXSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(XLSXHeader))
	for i, name := range XLSXHeader {
		header[i] = name
	}
	if err = book.SetSheetRow(XLSXSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range employees {
		var deptCode, deptDescription string
		if e.Department != nil {
			deptCode = e.Department.Code
			deptDescription = e.Department.Description
		}

		cell, cellErr := excelize.CoordinatesToCellName(1, i+2)
		if cellErr != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, cellErr)
		}

		row := []any{e.ID, e.Code, e.FirstName, e.LastName, e.Email, e.Phone, e.Address, deptCode, deptDescription}
		if err = book.SetSheetRow(XLSXSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write employee %d: %w", e.ID, err)
		}
	}

	if _, err = book.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}
