package parser_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnknownOlympus/athena/internal/models"
	"github.com/UnknownOlympus/athena/internal/parser"
)

// Helper function for RoundTripper mocking.
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

const roster = `
<table>
	<tr><th>Code</th><th>First</th><th>Last</th></tr>
	<tr tag="row_101">
		<td> E-101 </td>
		<td>John</td>
		<td>Doe</td>
		<td>john.doe@example.com</td>
		<td>123-456-7890</td>
		<td>1 Main St</td>
		<td>RD</td>
		<td>Research &amp; Development</td>
	</tr>
	<tr tag="row_102">
		<td>E-102</td>
		<td>Jane</td>
		<td>Smith</td>
		<td></td>
		<td>987-654-3210</td>
		<td>2 Side St</td>
		<td></td>
		<td></td>
	</tr>
	<tr tag="row_abc">
		<td></td>
		<td>No</td>
		<td>Code</td>
	</tr>
</table>
`

func TestParseEmployees_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, models.UserAgent, r.Header.Get("User-Agent"))

		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(roster))
		assert.NoError(t, err)
	}))
	defer ts.Close()

	employeeParser := parser.NewEmployeeParser(ts.Client(), ts.URL)

	employees, err := employeeParser.ParseEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2, "row without a code is skipped")

	assert.Equal(t, models.Employee{
		ID:         101,
		Code:       "E-101",
		FirstName:  "John",
		LastName:   "Doe",
		Email:      "john.doe@example.com",
		Phone:      "123-456-7890",
		Address:    "1 Main St",
		Department: &models.Department{Code: "RD", Description: "Research & Development"},
	}, employees[0])

	assert.Equal(t, 102, employees[1].ID)
	assert.Empty(t, employees[1].Email)
	assert.Nil(t, employees[1].Department)
}

func TestParseEmployeeFromBody_NoRows(t *testing.T) {
	employees, err := parser.ParseEmployeeFromBody(strings.NewReader("<p>nothing here</p>"))

	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)
}

func TestParseEmployees_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	_, err := parser.NewEmployeeParser(ts.Client(), ts.URL).ParseEmployees(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrRosterFetch)
	assert.Contains(t, err.Error(), "403")
}

func TestParseEmployees_HTTPRequestError(t *testing.T) {
	client := &http.Client{
		Transport: roundTripFunc(func(_ *http.Request) (*http.Response, error) {
			return nil, http.ErrHandlerTimeout
		}),
	}

	_, err := parser.NewEmployeeParser(client, "http://example.com").ParseEmployees(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, http.ErrHandlerTimeout))
	assert.Contains(t, err.Error(), "failed to request")
}

func TestParseEmployees_InvalidURL(t *testing.T) {
	_, err := parser.NewEmployeeParser(&http.Client{}, "://invalid-url").ParseEmployees(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse destination URL")
}
