package metricizing

import (
	"context"

	"github.com/salesmetrics/kpi-reporting-api/internal/domain"
)

// Engine define o contrato do motor de métricas consumido pelos três
// renderizadores (dashboard, PDF/planilha e e-mail). Cada accessor recarrega
// a fonte e calcula apenas o KPI pedido; ComputeSnapshot carrega uma única
// vez e deriva todas as métricas do mesmo conjunto de linhas, garantindo
// consistência entre os KPIs de um mesmo snapshot.
type Engine interface {
	// ComputeSnapshot é o ponto de entrada "calcula tudo"
	ComputeSnapshot(ctx context.Context) (*domain.MetricSnapshot, error)

	// TotalRevenue retorna a soma da receita, arredondada em 2 casas
	TotalRevenue(ctx context.Context) (float64, error)

	// ProfitMetrics retorna lucro total e margem percentual
	ProfitMetrics(ctx context.Context) (totalProfit float64, marginPct float64, err error)

	// AcquisitionCost retorna o custo de aquisição de clientes (CAC)
	AcquisitionCost(ctx context.Context) (float64, error)

	// CustomerStatus retorna a classificação ativo/perdido dos clientes
	CustomerStatus(ctx context.Context) (*domain.CustomerStatus, error)

	// RevenueByProduct retorna receita e lucro por linha de produto
	RevenueByProduct(ctx context.Context) ([]*domain.GroupRevenue, error)

	// RevenueByRegion retorna receita e lucro por país
	RevenueByRegion(ctx context.Context) ([]*domain.GroupRevenue, error)

	// TopCustomers retorna os 10 maiores clientes por receita
	TopCustomers(ctx context.Context) ([]*domain.CustomerRevenue, error)

	// MonthlyTrend retorna a série mensal de receita e lucro
	MonthlyTrend(ctx context.Context) ([]*domain.MonthlyRevenue, error)
}
