package web_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/UnknownOlympus/athena/internal/models"
	mocks "github.com/UnknownOlympus/athena/mock"
)

func TestListEmployeesAPI(t *testing.T) {
	t.Parallel()

	repo := mocks.NewEmployeeRepoIface(t)
	repo.On("ListEmployees", mock.Anything, models.Filters{FirstName: "an", LastName: ""}).
		Return([]models.Employee{ann}, nil).Once()

	env := newTestEnv(t, mocks.NewEmployeeLister(t), repo)

	rec := env.do(t, get("/api/employees/list?FirstName=an", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.JSONEq(t, `[{
		"id": 1, "firstName": "Ann", "lastName": "Lee", "email": "ann@example.com",
		"phone": "555-0101", "address": "1 Main St", "code": "E1",
		"department": {"code": "RD", "description": "Research"}
	}]`, rec.Body.String())
	assert.InDelta(t, 1, testutil.ToFloat64(env.metrics.APIRequests.WithLabelValues("success")), 0)
	assert.Zero(t, env.store.Len(), "the API does not open page sessions")
}

func TestListEmployeesAPI_EmptyIsArray(t *testing.T) {
	t.Parallel()

	repo := mocks.NewEmployeeRepoIface(t)
	repo.On("ListEmployees", mock.Anything, models.Filters{LastName: "Nobody"}).Return(nil, nil).Once()

	env := newTestEnv(t, mocks.NewEmployeeLister(t), repo)

	rec := env.do(t, get("/api/employees/list?LastName=Nobody", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListEmployeesAPI_RepositoryFailure(t *testing.T) {
	t.Parallel()

	repo := mocks.NewEmployeeRepoIface(t)
	repo.On("ListEmployees", mock.Anything, models.Filters{}).Return(nil, errors.New("connection refused")).Once()

	env := newTestEnv(t, mocks.NewEmployeeLister(t), repo)

	rec := env.do(t, get("/api/employees/list", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"failed to list employees"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.InDelta(t, 1, testutil.ToFloat64(env.metrics.APIRequests.WithLabelValues("failure")), 0)
}
