package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting"
	reportMocks "github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

func reportRouter(t *testing.T) (*router.Router, *reportMocks.MockService) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	service := reportMocks.NewMockService(ctrl)
	reports := NewReportHandler(service)

	r := router.New(func(r *router.Router) {
		r.GET("/api/reports/:accountId", reports.Generate)
		r.GET("/api/reports/:accountId/export", reports.Export)
	})

	return r, service
}

func TestExportDefaultsToJSON(t *testing.T) {
	r, service := reportRouter(t)

	service.EXPECT().
		ExportReport(gomock.Any(), int64(1), 30, reporting.FormatJSON).
		Return(&reporting.ExportResult{
			Filename:    "report_1_30d_abc123.json",
			ContentType: "application/json",
			Body:        []byte(`{"summary":{}}`),
		}, nil)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/reports/1/export", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), `.json"`)
}

func TestExportForwardsCSVFormat(t *testing.T) {
	r, service := reportRouter(t)

	service.EXPECT().
		ExportReport(gomock.Any(), int64(1), 7, reporting.FormatCSV).
		Return(&reporting.ExportResult{
			Filename:    "report_1_7d_abc123.csv",
			ContentType: "text/csv",
			Body:        []byte("date,campaign_id\n"),
		}, nil)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(
		http.MethodGet, "/api/reports/1/export?format=csv&dateRange=7", nil,
	))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/csv", recorder.Header().Get("Content-Type"))
}

func TestExportUnsupportedFormat(t *testing.T) {
	r, service := reportRouter(t)

	service.EXPECT().
		ExportReport(gomock.Any(), int64(1), 30, "xml").
		Return(nil, reporting.ErrUnsupportedFormat)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest(
		http.MethodGet, "/api/reports/1/export?format=xml", nil,
	))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_003")
}
