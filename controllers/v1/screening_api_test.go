package apiv1

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"hr-screening-backend/lib/applicant"
	"hr-screening-backend/lib/feedback"
	"hr-screening-backend/lib/screening/oracle"
	"hr-screening-backend/models"
	apimodels "hr-screening-backend/models/api"
	screeningapimodels "hr-screening-backend/models/api/screening"
	dbmodels "hr-screening-backend/models/db"
)

const validID = "3f1c2a4e-9a43-4c1e-8a51-3b2d7c8e9f01"

type fakeApplicants struct {
	ingestErr error
}

func (f fakeApplicants) Ingest(ctx context.Context, request screeningapimodels.ApplicationRequest) (screeningapimodels.ApplicationView, error) {
	if f.ingestErr != nil {
		return screeningapimodels.ApplicationView{}, f.ingestErr
	}
	return screeningapimodels.ApplicationView{ID: validID, Status: models.ApplicationStatusPending}, nil
}

func (f fakeApplicants) Review(ctx context.Context, id string, request screeningapimodels.ReviewRequest) (screeningapimodels.ApplicationView, error) {
	if id != validID {
		return screeningapimodels.ApplicationView{}, applicant.ErrNotFound
	}
	return screeningapimodels.ApplicationView{ID: id, Status: request.Status}, nil
}

func (f fakeApplicants) Get(id string) (dbmodels.ScreeningApplication, error) {
	return dbmodels.ScreeningApplication{}, applicant.ErrNotFound
}

type fakeFeedback struct{}

func (f fakeFeedback) Create(ctx context.Context, request screeningapimodels.FeedbackRequest) (screeningapimodels.FeedbackView, error) {
	if request.ApplicationID != validID {
		return screeningapimodels.FeedbackView{}, applicant.ErrNotFound
	}
	return screeningapimodels.FeedbackView{ID: "f-1", Agreement: models.FeedbackAgree, IssueCategory: models.IssueCorrect}, nil
}

func newScreeningApp(applicants applicant.Provider) *fiber.App {
	applicant.Instance = applicants
	feedback.Instance = fakeFeedback{}
	app := fiber.New()
	InitScreeningApiRouters(app, 1<<20)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, url, body string) (int, apimodels.Response) {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	result := apimodels.Response{}
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &result))
	}
	return resp.StatusCode, result
}

func TestScreeningApi(t *testing.T) {
	t.Run(`application created check`, func(t *testing.T) {
		app := newScreeningApp(fakeApplicants{})
		status, resp := doRequest(t, app, fiber.MethodPost, "/screening/applications",
			`{"job_class": "Analyst", "result": {"applicant_name": "A"}}`)
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "success", resp.Status)
	})

	t.Run(`application without result check`, func(t *testing.T) {
		app := newScreeningApp(fakeApplicants{})
		status, resp := doRequest(t, app, fiber.MethodPost, "/screening/applications", `{"job_class": "Analyst"}`)
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "не указан результат классификации", resp.Message)
	})

	t.Run(`oracle contract violation check`, func(t *testing.T) {
		ve := &oracle.ValidationError{Errors: []oracle.FieldError{{Field: "ai_label", Message: "bad"}}}
		app := newScreeningApp(fakeApplicants{ingestErr: ve})
		status, resp := doRequest(t, app, fiber.MethodPost, "/screening/applications",
			`{"job_class": "Analyst", "result": {}}`)
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Contains(t, resp.Message, "ai_label: bad")
	})

	t.Run(`storage failure check`, func(t *testing.T) {
		app := newScreeningApp(fakeApplicants{ingestErr: errors.New("db down")})
		status, resp := doRequest(t, app, fiber.MethodPost, "/screening/applications",
			`{"job_class": "Analyst", "result": {}}`)
		require.Equal(t, fiber.StatusInternalServerError, status)
		require.Equal(t, "Ошибка сохранения заявки", resp.Message)
	})

	t.Run(`review check`, func(t *testing.T) {
		app := newScreeningApp(fakeApplicants{})
		status, _ := doRequest(t, app, fiber.MethodPut, "/screening/applications/"+validID+"/review",
			`{"status": "qualified", "reviewed_by": "hr"}`)
		require.Equal(t, fiber.StatusOK, status)

		status, _ = doRequest(t, app, fiber.MethodPut, "/screening/applications/not-a-uuid/review",
			`{"status": "qualified", "reviewed_by": "hr"}`)
		require.Equal(t, fiber.StatusBadRequest, status)

		status, _ = doRequest(t, app, fiber.MethodPut, "/screening/applications/"+validID+"/review",
			`{"status": "pending", "reviewed_by": "hr"}`)
		require.Equal(t, fiber.StatusBadRequest, status)

		status, _ = doRequest(t, app, fiber.MethodPut, "/screening/applications/0c6f8a1e-1b2c-4d3e-9f40-5a6b7c8d9e0f/review",
			`{"status": "qualified", "reviewed_by": "hr"}`)
		require.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run(`feedback check`, func(t *testing.T) {
		app := newScreeningApp(fakeApplicants{})
		status, _ := doRequest(t, app, fiber.MethodPost, "/screening/feedback",
			`{"application_id": "`+validID+`", "reviewer_decision": "Likely Qualified"}`)
		require.Equal(t, fiber.StatusOK, status)

		status, _ = doRequest(t, app, fiber.MethodPost, "/screening/feedback",
			`{"application_id": "other", "reviewer_decision": "Likely Qualified"}`)
		require.Equal(t, fiber.StatusNotFound, status)

		status, _ = doRequest(t, app, fiber.MethodPost, "/screening/feedback",
			`{"application_id": "`+validID+`", "reviewer_decision": "Maybe"}`)
		require.Equal(t, fiber.StatusBadRequest, status)
	})
}
