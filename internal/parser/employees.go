// Package parser reads employee rosters published as HTML tables.
package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/UnknownOlympus/athena/internal/models"
)

var ErrRosterFetch = errors.New("failed to fetch roster")

// Roster column positions, 1-based as used by :nth-child.
const (
	tdCode = iota + 1
	tdFirstName
	tdLastName
	tdEmail
	tdPhone
	tdAddress
	tdDepartmentCode
	tdDepartmentDescription
)

type EmployeeParserIface interface {
	ParseEmployees(ctx context.Context) ([]models.Employee, error)
}

type EmployeeParser struct {
	client    *http.Client
	sourceURL string
}

func NewEmployeeParser(client *http.Client, sourceURL string) EmployeeParserIface {
	return &EmployeeParser{client: client, sourceURL: sourceURL}
}

// ParseEmployees downloads the roster page and parses its rows.
func (ep *EmployeeParser) ParseEmployees(ctx context.Context) ([]models.Employee, error) {
	resp, err := GetHTMLResponse(ctx, ep.client, ep.sourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster html response: %w", err)
	}
	defer resp.Body.Close()

	return ParseEmployeeFromBody(resp.Body)
}

// GetHTMLResponse issues a GET to destURL and returns the response when it is 200 OK.
func GetHTMLResponse(ctx context.Context, client *http.Client, destURL string) (*http.Response, error) {
	reqURL, err := url.Parse(destURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse destination URL %s: %w", destURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new request %s: %w", reqURL.String(), err)
	}

	req.Header.Set("User-Agent", models.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request %s: %w", destURL, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w, received status code: %d", ErrRosterFetch, resp.StatusCode)
	}

	return resp, nil
}

// ParseEmployeeFromBody extracts employees from `tr[tag^="row_"]` rows. Rows without a code are skipped,
// and a row with an empty department code yields an employee without a department.
func ParseEmployeeFromBody(in io.Reader) ([]models.Employee, error) {
	employees := []models.Employee{}

	doc, err := goquery.NewDocumentFromReader(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster document: %w", err)
	}

	doc.Find(`tr[tag^="row_"]`).Each(func(_ int, row *goquery.Selection) {
		cell := func(n int) string {
			return strings.TrimSpace(row.Find(fmt.Sprintf("td:nth-child(%d)", n)).Text())
		}

		employee := models.Employee{
			Code:      cell(tdCode),
			FirstName: cell(tdFirstName),
			LastName:  cell(tdLastName),
			Email:     cell(tdEmail),
			Phone:     cell(tdPhone),
			Address:   cell(tdAddress),
		}
		if employee.Code == "" {
			return
		}

		employee.ID = parseIDFromTag(row.AttrOr("tag", ""))

		if deptCode := cell(tdDepartmentCode); deptCode != "" {
			employee.Department = &models.Department{
				Code:        deptCode,
				Description: cell(tdDepartmentDescription),
			}
		}

		employees = append(employees, employee)
	})

	return employees, nil
}

// parseIDFromTag reads the numeric suffix of a "row_<id>" tag, or 0 when it has none.
func parseIDFromTag(tag string) int {
	identifier, err := strconv.Atoi(strings.TrimPrefix(tag, "row_"))
	if err != nil {
		return 0
	}

	return identifier
}
