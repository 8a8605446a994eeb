package handler

import (
	"encoding/json"
	"net/http"

	"github.com/salesmetrics/kpi-reporting-api/internal/usecases/metricizing"
	"github.com/salesmetrics/kpi-reporting-api/internal/usecases/reporting"
	"github.com/salesmetrics/kpi-reporting-api/pkg/apiErrors"
	"github.com/salesmetrics/kpi-reporting-api/pkg/log"
)

// GeneratePDFReport calcula um snapshot e gera o relatório em PDF,
// retornando o caminho do arquivo gerado
func GeneratePDFReport(engine metricizing.Engine, generator reporting.PDFGenerator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("reports: generating PDF report")

		snapshot, err := engine.ComputeSnapshot(r.Context())
		if err != nil {
			writeMetricError(w, r, "reports: failed to compute snapshot for PDF", err)
			return
		}

		path, err := generator.Generate(snapshot)
		if err != nil {
			logger.WithError(err).Error("reports: failed to generate PDF")
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao gerar o relatório em PDF", nil)
			return
		}

		logger.WithField("path", path).Info("reports: PDF report generated")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Relatório PDF gerado com sucesso",
			"path":    path,
		})
	})
}

// ExportSpreadsheetReport calcula um snapshot e exporta a planilha xlsx,
// retornando o caminho do arquivo gerado
func ExportSpreadsheetReport(engine metricizing.Engine, exporter reporting.SpreadsheetExporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("reports: exporting spreadsheet report")

		snapshot, err := engine.ComputeSnapshot(r.Context())
		if err != nil {
			writeMetricError(w, r, "reports: failed to compute snapshot for spreadsheet", err)
			return
		}

		path, err := exporter.Export(snapshot)
		if err != nil {
			logger.WithError(err).Error("reports: failed to export spreadsheet")
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao exportar a planilha", nil)
			return
		}

		logger.WithField("path", path).Info("reports: spreadsheet exported")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Planilha exportada com sucesso",
			"path":    path,
		})
	})
}
