package web_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/UnknownOlympus/athena/internal/client"
	"github.com/UnknownOlympus/athena/internal/metrics"
	"github.com/UnknownOlympus/athena/internal/models"
	"github.com/UnknownOlympus/athena/internal/repository"
	"github.com/UnknownOlympus/athena/internal/services/directory"
	"github.com/UnknownOlympus/athena/internal/web"
)

type listFunc = func(context.Context, models.Filters) ([]models.Employee, error)

type testEnv struct {
	srv     *web.Server
	store   *directory.Store
	metrics *metrics.Metrics
}

func newTestEnv(t *testing.T, lister client.EmployeeLister, repo repository.EmployeeRepoIface) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	testMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	store := directory.NewStore(logger, lister, testMetrics, time.Minute, time.Second)
	t.Cleanup(store.Close)

	return &testEnv{
		srv:     web.NewServer(logger, store, repo, testMetrics),
		store:   store,
		metrics: testMetrics,
	}
}

func (e *testEnv) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	e.srv.ServeHTTP(rec, req)

	return rec
}

// openSession loads the page as a new visitor and waits for the initial fetch to settle.
func (e *testEnv) openSession(t *testing.T) *http.Cookie {
	t.Helper()

	rec := e.do(t, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec)
	sess, ok := e.store.Get(cookie.Value)
	require.True(t, ok)
	sess.Wait()

	return cookie
}

func (e *testEnv) waitSession(t *testing.T, cookie *http.Cookie) {
	t.Helper()

	sess, ok := e.store.Get(cookie.Value)
	require.True(t, ok)
	sess.Wait()
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "athena_session" {
			return cookie
		}
	}
	t.Fatal("session cookie not set")

	return nil
}

func get(path string, cookie *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	return req
}

func post(path string, form url.Values, cookie *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	return req
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)

	return doc
}

func disabled(sel *goquery.Selection) bool {
	_, ok := sel.Attr("disabled")
	return ok
}
