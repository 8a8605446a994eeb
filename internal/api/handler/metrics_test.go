package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/salesmetrics/kpi-reporting-api/infrastructure/dataset"
	"github.com/salesmetrics/kpi-reporting-api/internal/domain"
	"github.com/salesmetrics/kpi-reporting-api/internal/usecases/metricizing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func testEngine() metricizing.Engine {
	return metricizing.NewService(dataset.NewStaticSource(
		&domain.TransactionRow{
			CustomerName: "Cliente X",
			ProductLine:  "Classic Cars",
			Country:      "USA",
			Sales:        floatPtr(100),
			Year:         intPtr(2004),
			Month:        intPtr(1),
		},
		&domain.TransactionRow{
			CustomerName: "Cliente Y",
			ProductLine:  "Motorcycles",
			Country:      "France",
			Sales:        floatPtr(200),
			Year:         intPtr(2005),
			Month:        intPtr(2),
		},
	))
}

func failingEngine() metricizing.Engine {
	return metricizing.NewService(&dataset.StaticSource{Err: dataset.ErrSourceUnavailable})
}

func TestGetMetricSnapshot(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/snapshot", nil)
	rec := httptest.NewRecorder()

	GetMetricSnapshot(testEngine()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var snapshot domain.MetricSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))

	assert.Equal(t, 300.0, snapshot.TotalRevenue)
	assert.Equal(t, 135.0, snapshot.TotalProfit)
	assert.Equal(t, 45.0, snapshot.ProfitMarginPct)
	require.Len(t, snapshot.RevenueByProduct, 2)
	assert.Equal(t, "Motorcycles", snapshot.RevenueByProduct[0].Name)
}

func TestGetMetricSnapshot_SourceUnavailable(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/snapshot", nil)
	rec := httptest.NewRecorder()

	GetMetricSnapshot(failingEngine()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "SRC_001", payload["code"])
}

func TestGetMetricSummary(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/summary", nil)
	rec := httptest.NewRecorder()

	GetMetricSummary(testEngine()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summary map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))

	assert.Equal(t, 300.0, summary["total_revenue"])
	assert.Equal(t, 45.0, summary["profit_margin_pct"])

	// O resumo não carrega os agrupamentos
	assert.NotContains(t, summary, "revenue_by_product")
	assert.NotContains(t, summary, "monthly_trend")
}

func TestGetRevenueByProduct(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/revenue-by-product", nil)
	rec := httptest.NewRecorder()

	GetRevenueByProduct(testEngine()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var groups []*domain.GroupRevenue
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &groups))
	require.Len(t, groups, 2)
	assert.Equal(t, "Motorcycles", groups[0].Name)
	assert.Equal(t, 200.0, groups[0].Revenue)
}

func TestGetRevenueByRegion(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/revenue-by-region", nil)
	rec := httptest.NewRecorder()

	GetRevenueByRegion(testEngine()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var groups []*domain.GroupRevenue
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &groups))
	require.Len(t, groups, 2)
	assert.Equal(t, "France", groups[0].Name)
}

func TestGetTopCustomers(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/top-customers", nil)
	rec := httptest.NewRecorder()

	GetTopCustomers(testEngine()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var customers []*domain.CustomerRevenue
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &customers))
	require.Len(t, customers, 2)
	assert.Equal(t, "Cliente Y", customers[0].Name)
	assert.Equal(t, 1, customers[0].Orders)
}

func TestGetMonthlyTrend(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/monthly-trend", nil)
	rec := httptest.NewRecorder()

	GetMonthlyTrend(testEngine()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var trend []*domain.MonthlyRevenue
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trend))
	require.Len(t, trend, 2)
	assert.Equal(t, "2004-01", trend[0].Month)
	assert.Equal(t, "2005-02", trend[1].Month)
}
