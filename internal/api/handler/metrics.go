package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/salesmetrics/kpi-reporting-api/infrastructure/dataset"
	"github.com/salesmetrics/kpi-reporting-api/internal/usecases/metricizing"
	"github.com/salesmetrics/kpi-reporting-api/pkg/apiErrors"
	"github.com/salesmetrics/kpi-reporting-api/pkg/log"
)

// GetMetricSnapshot retorna o snapshot completo de métricas em uma única resposta
func GetMetricSnapshot(service metricizing.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("metrics: computing full metric snapshot")

		snapshot, err := service.ComputeSnapshot(r.Context())
		if err != nil {
			writeMetricError(w, r, "metrics: failed to compute snapshot", err)
			return
		}

		logger.WithField("total_revenue", snapshot.TotalRevenue).
			Info("metrics: snapshot computed successfully")

		writeJSON(w, r, snapshot)
	})
}

// GetMetricSummary retorna apenas os KPIs escalares (receita, lucro, margem,
// CAC e retenção), sem os agrupamentos
func GetMetricSummary(service metricizing.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("metrics: computing metric summary")

		snapshot, err := service.ComputeSnapshot(r.Context())
		if err != nil {
			writeMetricError(w, r, "metrics: failed to compute summary", err)
			return
		}

		summary := map[string]any{
			"generated_at":              snapshot.GeneratedAt,
			"total_revenue":             snapshot.TotalRevenue,
			"total_profit":              snapshot.TotalProfit,
			"profit_margin_pct":         snapshot.ProfitMarginPct,
			"customer_acquisition_cost": snapshot.CustomerAcquisitionCost,
			"customer_status":           snapshot.CustomerStatus,
			"highlights":                snapshot.Highlights,
		}

		writeJSON(w, r, summary)
	})
}

// GetRevenueByProduct retorna receita e lucro por linha de produto
func GetRevenueByProduct(service metricizing.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("metrics: computing revenue by product line")

		groups, err := service.RevenueByProduct(r.Context())
		if err != nil {
			writeMetricError(w, r, "metrics: failed to compute revenue by product", err)
			return
		}

		writeJSON(w, r, groups)
	})
}

// GetRevenueByRegion retorna receita e lucro por país
func GetRevenueByRegion(service metricizing.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("metrics: computing revenue by country")

		groups, err := service.RevenueByRegion(r.Context())
		if err != nil {
			writeMetricError(w, r, "metrics: failed to compute revenue by country", err)
			return
		}

		writeJSON(w, r, groups)
	})
}

// GetTopCustomers retorna os maiores clientes por receita acumulada
func GetTopCustomers(service metricizing.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("metrics: computing top customers")

		customers, err := service.TopCustomers(r.Context())
		if err != nil {
			writeMetricError(w, r, "metrics: failed to compute top customers", err)
			return
		}

		writeJSON(w, r, customers)
	})
}

// GetMonthlyTrend retorna a série mensal de receita e lucro
func GetMonthlyTrend(service metricizing.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("metrics: computing monthly revenue trend")

		trend, err := service.MonthlyTrend(r.Context())
		if err != nil {
			writeMetricError(w, r, "metrics: failed to compute monthly trend", err)
			return
		}

		writeJSON(w, r, trend)
	})
}

// writeMetricError traduz erros do motor de métricas para o payload de erro
// padronizado da API. Fonte indisponível vira 502, o resto vira 500.
func writeMetricError(w http.ResponseWriter, r *http.Request, message string, err error) {
	logger := log.ForContext(r.Context())
	logger.WithError(err).Error(message)

	if errors.Is(err, dataset.ErrSourceUnavailable) {
		apiErrors.WriteError(w, apiErrors.ErrSourceUnavailable, "Fonte de dados indisponível", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular métricas", nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("metrics: failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
