package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/UnknownOlympus/athena/internal/lib/logger/sl"
	"github.com/UnknownOlympus/athena/internal/models"
)

type errorResponse struct {
	Error string `json:"error"`
}

// listEmployees serves the employee list endpoint consumed by the page's data fetcher.
func (s *Server) listEmployees(c echo.Context) error {
	const opn = "Web.ListEmployees"
	log := s.initLogger(opn)
	ctx := c.Request().Context()

	filters := models.Filters{
		FirstName: c.QueryParam("FirstName"),
		LastName:  c.QueryParam("LastName"),
	}

	employees, err := s.repo.ListEmployees(ctx, filters)
	if err != nil {
		s.metrics.APIRequests.WithLabelValues("failure").Inc()
		log.ErrorContext(ctx, "Failed to list employees", sl.Filters(filters), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list employees"})
	}
	if employees == nil {
		employees = []models.Employee{}
	}

	s.metrics.APIRequests.WithLabelValues("success").Inc()
	log.DebugContext(ctx, "Employees listed", sl.Filters(filters), "count", len(employees))

	return c.JSON(http.StatusOK, employees)
}
