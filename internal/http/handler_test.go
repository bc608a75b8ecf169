package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visionguard-service/internal/auth"
	"visionguard-service/internal/http/middleware"
	"visionguard-service/internal/model"
	"visionguard-service/internal/report"
	"visionguard-service/internal/service"
	"visionguard-service/internal/storage"
)

type staticSource struct {
	rows []model.Violation
}

func (s *staticSource) Violations(_ context.Context, q report.Query) ([]model.Violation, error) {
	var matched []model.Violation
	for _, v := range s.rows {
		if q.Matches(v) {
			matched = append(matched, v)
		}
	}
	return matched, nil
}

func reportTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	worker := model.Worker{ID: 1, EmployeeID: "EMP-001", Name: "Aidan Murphy"}
	camera := model.Camera{ID: 10, Name: "Gate A cam", Zone: "Assembly"}
	source := &staticSource{rows: []model.Violation{
		{
			ID: 1, WorkerID: 1, Worker: &worker, CameraID: 10, Camera: &camera,
			ViolationType: model.PPEHelmet, ConfidenceScore: 92,
			DetectedAt: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
			Status:     model.ViolationPending,
		},
	}}

	tokens := auth.NewManager("test-secret", time.Hour)
	files, err := storage.NewLocal(t.TempDir(), "/uploads")
	require.NoError(t, err)

	handler := NewHandler(
		service.NewReportService(source, false),
		nil, nil, nil, nil, nil,
		zerolog.Nop(),
	)
	router := NewRouter(handler, middleware.Auth(tokens), files, "test")
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	token, err := tokens.Issue(&model.User{ID: 1, Username: "hr", Role: model.RoleHR})
	require.NoError(t, err)
	return server, token
}

func postJSON(t *testing.T, server *httptest.Server, token, path string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, server.URL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestViolationsByWorkerEndpoint(t *testing.T) {
	server, token := reportTestServer(t)

	resp := postJSON(t, server, token, "/api/reports/violations-by-worker", model.ReportFilter{Year: 2025, Month: 3})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []model.WorkerViolationReport `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Aidan Murphy", body.Data[0].WorkerName)
	assert.Equal(t, 1, body.Data[0].TotalViolations)
}

func TestReportEndpointRejectsBadPeriod(t *testing.T) {
	server, token := reportTestServer(t)

	resp := postJSON(t, server, token, "/api/reports/violations-by-worker", model.ReportFilter{Year: 2025, Month: 13})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReportEndpointRequiresToken(t *testing.T) {
	server, _ := reportTestServer(t)

	resp, err := http.Post(server.URL+"/api/reports/monthly-summary", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	// POST on a GET route still has to clear auth first
	assert.NotEqual(t, http.StatusOK, resp.StatusCode)
}

func TestMonthlySummaryEndpoint(t *testing.T) {
	server, token := reportTestServer(t)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/reports/monthly-summary?year=2025&month=3", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data model.MonthlySummary `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2025-03", body.Data.Month)
	assert.Equal(t, 1, body.Data.TotalViolations)
}

func TestExportEndpointsServeAttachments(t *testing.T) {
	server, token := reportTestServer(t)

	excel := postJSON(t, server, token, "/api/reports/export-excel", model.ReportFilter{Year: 2025, Month: 3})
	defer excel.Body.Close()
	require.Equal(t, http.StatusOK, excel.StatusCode)
	assert.Equal(t, report.ContentTypeXLSX, excel.Header.Get("Content-Type"))
	assert.Contains(t, excel.Header.Get("Content-Disposition"), "Violations_2025_3.xlsx")

	pdf := postJSON(t, server, token, "/api/reports/export-pdf", model.ReportFilter{Year: 2025, Month: 3})
	defer pdf.Body.Close()
	require.Equal(t, http.StatusOK, pdf.StatusCode)
	assert.Equal(t, report.ContentTypePDF, pdf.Header.Get("Content-Type"))
	assert.Contains(t, pdf.Header.Get("Content-Disposition"), "Violations_2025_3.pdf")
}
