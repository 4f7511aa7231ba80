package web

import (
	"bytes"
	"fmt"
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/UnknownOlympus/athena/internal/export"
	"github.com/UnknownOlympus/athena/internal/lib/logger/sl"
)

// ErrExportDisabled answers export requests while the page is busy, failed or empty.
var ErrExportDisabled = echo.NewHTTPError(http.StatusConflict, "export is not available for the current list")

// sendFile delivers content as a download named filename.
func sendFile(c echo.Context, content []byte, filename, contentType string) error {
	c.Response().Header().Set(
		echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": filename}),
	)

	return c.Blob(http.StatusOK, contentType, content)
}

func (s *Server) exportXML(c echo.Context) error {
	const opn = "Web.ExportXML"
	log := s.initLogger(opn)

	employees, ok := sessionFrom(c).Exportable()
	if !ok {
		return ErrExportDisabled
	}

	doc := export.EmployeesToXML(employees)
	s.metrics.Exports.WithLabelValues("xml").Inc()
	log.DebugContext(c.Request().Context(), "Exporting employees", "format", "xml", "count", len(employees))

	return sendFile(c, []byte(doc), export.XMLFilename, export.XMLContentType)
}

func (s *Server) exportXLSX(c echo.Context) error {
	const opn = "Web.ExportXLSX"
	log := s.initLogger(opn)

	employees, ok := sessionFrom(c).Exportable()
	if !ok {
		return ErrExportDisabled
	}

	var buf bytes.Buffer
	if err := export.WriteEmployeesXLSX(&buf, employees); err != nil {
		log.ErrorContext(c.Request().Context(), "Failed to build workbook", sl.Err(err))
		return fmt.Errorf("failed to export employees: %w", err)
	}

	s.metrics.Exports.WithLabelValues("xlsx").Inc()
	log.DebugContext(c.Request().Context(), "Exporting employees", "format", "xlsx", "count", len(employees))

	return sendFile(c, buf.Bytes(), export.XLSXFilename, export.XLSXContentType)
}
