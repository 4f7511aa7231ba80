package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/UnknownOlympus/athena/internal/metrics"
	"github.com/UnknownOlympus/athena/internal/models"
)

// ListPath is the query endpoint of the employee API.
const ListPath = "/api/employees/list"

// FailureMessage is the only failure text shown to users, whatever the cause.
const FailureMessage = "Unable to load employees"

var (
	ErrListFetch      = errors.New(FailureMessage)
	ErrUnexpectedCode = errors.New("unexpected status code")
)

// EmployeeLister retrieves employees matching the given filters.
type EmployeeLister interface {
	List(ctx context.Context, filters models.Filters) ([]models.Employee, error)
}

type EmployeeClient struct {
	client  *http.Client
	baseURL string
	metrics *metrics.Metrics
}

func NewEmployeeClient(client *http.Client, metrics *metrics.Metrics, baseURL string) *EmployeeClient {
	return &EmployeeClient{client: client, baseURL: baseURL, metrics: metrics}
}

// BuildQuery returns query parameters for the non-empty filter fields only.
func BuildQuery(filters models.Filters) url.Values {
	params := url.Values{}
	if filters.FirstName != "" {
		params.Set("FirstName", filters.FirstName)
	}
	if filters.LastName != "" {
		params.Set("LastName", filters.LastName)
	}

	return params
}

// List issues one GET against the list endpoint. Every failure, whether transport, status
// or decoding, is returned wrapped in ErrListFetch.
func (ec *EmployeeClient) List(ctx context.Context, filters models.Filters) ([]models.Employee, error) {
	startTime := time.Now()
	defer func() {
		ec.metrics.FetchDuration.Observe(time.Since(startTime).Seconds())
	}()

	employees, err := ec.list(ctx, filters)
	if err != nil {
		ec.metrics.FetchRequests.WithLabelValues("failure").Inc()
		return nil, fmt.Errorf("%w: %w", ErrListFetch, err)
	}

	ec.metrics.FetchRequests.WithLabelValues("success").Inc()

	return employees, nil
}

func (ec *EmployeeClient) list(ctx context.Context, filters models.Filters) ([]models.Employee, error) {
	reqURL := ec.baseURL + ListPath
	if query := BuildQuery(filters).Encode(); query != "" {
		reqURL += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new request %s: %w", reqURL, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", models.UserAgent)

	resp, err := ec.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request %s: %w", reqURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w, received status code: %d", ErrUnexpectedCode, resp.StatusCode)
	}

	var employees []models.Employee
	if err = json.NewDecoder(resp.Body).Decode(&employees); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	if employees == nil {
		employees = []models.Employee{}
	}

	return employees, nil
}
