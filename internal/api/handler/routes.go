package handler

import (
	"net/http"

	"github.com/salesmetrics/kpi-reporting-api/internal/api/handler/router"
	"github.com/salesmetrics/kpi-reporting-api/internal/usecases/metricizing"
	"github.com/salesmetrics/kpi-reporting-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(service metricizing.Engine) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/snapshot",
			Method:  http.MethodGet,
			Handler: GetMetricSnapshot(service),
		},
		{
			Path:    "/v1/metrics/summary",
			Method:  http.MethodGet,
			Handler: GetMetricSummary(service),
		},
		{
			Path:    "/v1/metrics/revenue-by-product",
			Method:  http.MethodGet,
			Handler: GetRevenueByProduct(service),
		},
		{
			Path:    "/v1/metrics/revenue-by-region",
			Method:  http.MethodGet,
			Handler: GetRevenueByRegion(service),
		},
		{
			Path:    "/v1/metrics/top-customers",
			Method:  http.MethodGet,
			Handler: GetTopCustomers(service),
		},
		{
			Path:    "/v1/metrics/monthly-trend",
			Method:  http.MethodGet,
			Handler: GetMonthlyTrend(service),
		},
	}
}

func Reports(
	engine metricizing.Engine,
	generator reporting.PDFGenerator,
	exporter reporting.SpreadsheetExporter,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/pdf",
			Method:  http.MethodPost,
			Handler: GeneratePDFReport(engine, generator),
		},
		{
			Path:    "/v1/reports/spreadsheet",
			Method:  http.MethodPost,
			Handler: ExportSpreadsheetReport(engine, exporter),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
