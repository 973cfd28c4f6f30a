package apiv1

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"hr-screening-backend/lib/analytics"
	"hr-screening-backend/lib/analytics/engine"
	jsonexport "hr-screening-backend/lib/export/json"
	analyticsapimodels "hr-screening-backend/models/api/analytics"
)

type fakeAnalytics struct {
	analytics.Provider
	requests []analyticsapimodels.ReportRequest
}

func (f *fakeAnalytics) Report(ctx context.Context, request analyticsapimodels.ReportRequest) (engine.Report, error) {
	f.requests = append(f.requests, request)
	return engine.Report{TimeRangeDays: request.Days}, nil
}

func (f *fakeAnalytics) ExportJSON(ctx context.Context, request analyticsapimodels.ReportRequest) ([]byte, string, error) {
	return []byte(`{}`), "analytics-report-2024-06-30.json", nil
}

func (f *fakeAnalytics) ExportXls(ctx context.Context, request analyticsapimodels.ReportRequest) (*bytes.Buffer, error) {
	return bytes.NewBufferString("PK"), nil
}

func (f *fakeAnalytics) ListArchives(limit int) ([]analyticsapimodels.ArchiveView, error) {
	return []analyticsapimodels.ArchiveView{{ObjectKey: "reports/x/a.json", Size: int64(limit)}}, nil
}

func newAnalyticsApp(fake *fakeAnalytics) *fiber.App {
	analytics.Instance = fake
	app := fiber.New()
	InitAnalyticsApiRouters(app)
	return app
}

func TestAnalyticsApi(t *testing.T) {
	t.Run(`report check`, func(t *testing.T) {
		fake := &fakeAnalytics{}
		app := newAnalyticsApp(fake)
		status, resp := doRequest(t, app, fiber.MethodPut, "/analytics/report",
			`{"days": 90, "granularity": "month", "filter": {"job_classes": ["Analyst"]}}`)
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "success", resp.Status)
		require.Len(t, fake.requests, 1)
		require.Equal(t, 90, fake.requests[0].Days)
		require.Equal(t, []string{"Analyst"}, fake.requests[0].Filter.JobClasses)
	})

	t.Run(`invalid window check`, func(t *testing.T) {
		fake := &fakeAnalytics{}
		app := newAnalyticsApp(fake)
		status, resp := doRequest(t, app, fiber.MethodPut, "/analytics/report", `{"days": 14}`)
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "fail", resp.Status)
		require.Empty(t, fake.requests)
	})

	t.Run(`json export headers check`, func(t *testing.T) {
		app := newAnalyticsApp(&fakeAnalytics{})
		req := httptest.NewRequest(fiber.MethodPut, "/analytics/report_export", strings.NewReader(`{"days": 30}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, jsonexport.ContentType, resp.Header.Get(fiber.HeaderContentType))
		require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "analytics-report-2024-06-30.json")
	})

	t.Run(`archive list check`, func(t *testing.T) {
		app := newAnalyticsApp(&fakeAnalytics{})
		status, resp := doRequest(t, app, fiber.MethodGet, "/analytics/report_archive?limit=5", ``)
		require.Equal(t, fiber.StatusOK, status)
		list, ok := resp.Data.([]interface{})
		require.True(t, ok)
		require.Len(t, list, 1)
	})
}
