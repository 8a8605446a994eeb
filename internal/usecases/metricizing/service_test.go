package metricizing

import (
	"context"
	"testing"

	"github.com/salesmetrics/kpi-reporting-api/infrastructure/dataset"
	"github.com/salesmetrics/kpi-reporting-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// row monta uma linha de venda válida para os testes
func row(customer, product, country string, sales float64, year, month int) *domain.TransactionRow {
	return &domain.TransactionRow{
		CustomerName: customer,
		ProductLine:  product,
		Country:      country,
		Sales:        floatPtr(sales),
		Year:         intPtr(year),
		Month:        intPtr(month),
	}
}

func TestTotalRevenue(t *testing.T) {
	tests := []struct {
		name     string
		rows     []*domain.TransactionRow
		expected float64
	}{
		{
			name: "Duas vendas simples",
			rows: []*domain.TransactionRow{
				row("Cliente X", "Classic Cars", "USA", 100, 2004, 1),
				row("Cliente Y", "Motorcycles", "USA", 200, 2005, 2),
			},
			expected: 300.0,
		},
		{
			name:     "Fonte vazia reporta zero",
			rows:     nil,
			expected: 0.0,
		},
		{
			name: "Linha sem valor de venda é ignorada na soma",
			rows: []*domain.TransactionRow{
				row("Cliente X", "Classic Cars", "USA", 100, 2004, 1),
				{CustomerName: "Cliente Z", ProductLine: "Planes", Country: "France"},
			},
			expected: 100.0,
		},
		{
			name: "Resultado arredondado em duas casas",
			rows: []*domain.TransactionRow{
				row("Cliente X", "Classic Cars", "USA", 10.005, 2004, 1),
				row("Cliente Y", "Classic Cars", "USA", 20.001, 2004, 1),
			},
			expected: 30.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalRevenue(tt.rows))
		})
	}
}

func TestProfitMetrics(t *testing.T) {
	t.Run("Lucro com margem assumida de 45%", func(t *testing.T) {
		rows := []*domain.TransactionRow{
			row("Cliente X", "Classic Cars", "USA", 100, 2004, 1),
			row("Cliente Y", "Motorcycles", "USA", 200, 2005, 2),
		}

		profit, margin := ProfitMetrics(rows)
		assert.Equal(t, 135.0, profit)
		assert.Equal(t, 45.0, margin)
	})

	t.Run("Fonte vazia reporta lucro e margem zero", func(t *testing.T) {
		profit, margin := ProfitMetrics(nil)
		assert.Equal(t, 0.0, profit)
		assert.Equal(t, 0.0, margin)
	})

	t.Run("Margem é sempre a taxa assumida quando há receita", func(t *testing.T) {
		rows := []*domain.TransactionRow{
			row("A", "Classic Cars", "USA", 123.45, 2004, 3),
			row("B", "Planes", "France", 9876.54, 2004, 7),
			row("C", "Ships", "Spain", 0.01, 2005, 11),
		}

		_, margin := ProfitMetrics(rows)
		assert.Equal(t, 45.0, margin)
	})
}

func TestAcquisitionCost(t *testing.T) {
	tests := []struct {
		name     string
		rows     []*domain.TransactionRow
		expected float64
	}{
		{
			name: "Dois clientes distintos",
			rows: []*domain.TransactionRow{
				row("Cliente X", "Classic Cars", "USA", 100, 2004, 1),
				row("Cliente X", "Motorcycles", "USA", 50, 2004, 2),
				row("Cliente Y", "Planes", "France", 200, 2005, 2),
			},
			// 500 / 2 clientes * 100
			expected: 25000.0,
		},
		{
			name:     "Sem clientes reporta zero",
			rows:     nil,
			expected: 0.0,
		},
		{
			name: "Cliente sem venda ainda conta como cliente",
			rows: []*domain.TransactionRow{
				{CustomerName: "Cliente Z"},
			},
			expected: 50000.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AcquisitionCost(tt.rows))
		})
	}
}

func TestCustomerStatus(t *testing.T) {
	t.Run("Um cliente retido e um perdido", func(t *testing.T) {
		rows := []*domain.TransactionRow{
			row("Retido", "Classic Cars", "USA", 100, 2004, 1),
			row("Perdido", "Classic Cars", "USA", 100, 2004, 2),
			row("Retido", "Classic Cars", "USA", 150, 2005, 1),
			row("Novo", "Planes", "France", 80, 2005, 3),
		}

		status := CustomerStatus(rows)
		require.NotNil(t, status)
		assert.Equal(t, 2004, status.PriorYear)
		assert.Equal(t, 2005, status.LatestYear)
		assert.Equal(t, 1, status.ActiveCustomers)
		assert.Equal(t, 1, status.ChurnedCustomers)
		assert.Equal(t, 50.0, status.RetentionPct)
	})

	t.Run("Considera apenas os dois anos mais recentes", func(t *testing.T) {
		rows := []*domain.TransactionRow{
			row("Antigo", "Classic Cars", "USA", 100, 2003, 5),
			row("Retido", "Classic Cars", "USA", 100, 2004, 1),
			row("Retido", "Classic Cars", "USA", 150, 2005, 1),
		}

		status := CustomerStatus(rows)
		assert.Equal(t, 2004, status.PriorYear)
		assert.Equal(t, 2005, status.LatestYear)
		assert.Equal(t, 1, status.ActiveCustomers)
		assert.Equal(t, 0, status.ChurnedCustomers)
		assert.Equal(t, 100.0, status.RetentionPct)
	})

	t.Run("Ano único não tem coorte anterior", func(t *testing.T) {
		rows := []*domain.TransactionRow{
			row("Cliente X", "Classic Cars", "USA", 100, 2004, 1),
		}

		status := CustomerStatus(rows)
		assert.Equal(t, 2004, status.LatestYear)
		assert.Equal(t, 0, status.PriorYear)
		assert.Equal(t, 0.0, status.RetentionPct)
	})

	t.Run("Fonte vazia reporta status zerado", func(t *testing.T) {
		status := CustomerStatus(nil)
		require.NotNil(t, status)
		assert.Equal(t, 0, status.ActiveCustomers)
		assert.Equal(t, 0, status.ChurnedCustomers)
		assert.Equal(t, 0.0, status.RetentionPct)
	})

	t.Run("Retenção arredondada em uma casa", func(t *testing.T) {
		// 2 retidos de 3 clientes do ano anterior: 66.666... -> 66.7
		rows := []*domain.TransactionRow{
			row("A", "Classic Cars", "USA", 10, 2004, 1),
			row("B", "Classic Cars", "USA", 10, 2004, 1),
			row("C", "Classic Cars", "USA", 10, 2004, 1),
			row("A", "Classic Cars", "USA", 10, 2005, 1),
			row("B", "Classic Cars", "USA", 10, 2005, 1),
		}

		status := CustomerStatus(rows)
		assert.Equal(t, 66.7, status.RetentionPct)
	})
}

func TestRevenueByProduct(t *testing.T) {
	rows := []*domain.TransactionRow{
		row("A", "Motorcycles", "USA", 100, 2004, 1),
		row("B", "Classic Cars", "USA", 300, 2004, 1),
		row("C", "Motorcycles", "France", 50, 2004, 2),
		row("D", "Planes", "Spain", 150, 2005, 3),
	}

	groups := RevenueByProduct(rows)
	require.Len(t, groups, 3)

	// Receita decrescente
	assert.Equal(t, "Classic Cars", groups[0].Name)
	assert.Equal(t, 300.0, groups[0].Revenue)
	assert.Equal(t, 135.0, groups[0].Profit)
	assert.Equal(t, "Motorcycles", groups[1].Name)
	assert.Equal(t, 150.0, groups[1].Revenue)
	assert.Equal(t, "Planes", groups[2].Name)
}

func TestRevenueByRegion(t *testing.T) {
	t.Run("Empate de receita desempata pelo nome", func(t *testing.T) {
		rows := []*domain.TransactionRow{
			row("A", "Classic Cars", "Spain", 100, 2004, 1),
			row("B", "Classic Cars", "France", 100, 2004, 1),
		}

		groups := RevenueByRegion(rows)
		require.Len(t, groups, 2)
		assert.Equal(t, "France", groups[0].Name)
		assert.Equal(t, "Spain", groups[1].Name)
	})

	t.Run("Linhas sem país caem no grupo não informado", func(t *testing.T) {
		rows := []*domain.TransactionRow{
			row("A", "Classic Cars", "USA", 100, 2004, 1),
			{CustomerName: "B", ProductLine: "Planes", Sales: floatPtr(50)},
		}

		groups := RevenueByRegion(rows)
		require.Len(t, groups, 2)
		assert.Equal(t, "USA", groups[0].Name)
		assert.Equal(t, "Não informado", groups[1].Name)
		assert.Equal(t, 50.0, groups[1].Revenue)
	})
}

func TestGroupRevenue_Additivity(t *testing.T) {
	// A soma dos grupos é sempre a receita total, mesmo com linhas sem
	// chave de agrupamento: elas caem no grupo não informado
	rows := []*domain.TransactionRow{
		row("A", "Classic Cars", "USA", 100, 2004, 1),
		{CustomerName: "B", Sales: floatPtr(50)},
		{CustomerName: "C", ProductLine: "Planes", Sales: floatPtr(25.50)},
		{CustomerName: "D", Country: "France", Sales: floatPtr(10)},
	}

	total := TotalRevenue(rows)
	assert.Equal(t, 185.50, total)

	var byProduct float64
	for _, group := range RevenueByProduct(rows) {
		byProduct += group.Revenue
	}
	assert.Equal(t, total, byProduct)

	var byRegion float64
	for _, group := range RevenueByRegion(rows) {
		byRegion += group.Revenue
	}
	assert.Equal(t, total, byRegion)
}

func TestTopCustomers(t *testing.T) {
	t.Run("Acumula receita e conta pedidos por cliente", func(t *testing.T) {
		rows := []*domain.TransactionRow{
			row("Cliente X", "Classic Cars", "USA", 100, 2004, 1),
			row("Cliente X", "Motorcycles", "USA", 200, 2004, 2),
			row("Cliente Y", "Planes", "France", 250, 2005, 3),
		}

		customers := TopCustomers(rows)
		require.Len(t, customers, 2)
		assert.Equal(t, "Cliente X", customers[0].Name)
		assert.Equal(t, 300.0, customers[0].Revenue)
		assert.Equal(t, 2, customers[0].Orders)
		assert.Equal(t, "Cliente Y", customers[1].Name)
		assert.Equal(t, 1, customers[1].Orders)
	})

	t.Run("Ranking limitado aos 10 maiores", func(t *testing.T) {
		rows := make([]*domain.TransactionRow, 0, 12)
		for i := 0; i < 12; i++ {
			rows = append(rows, row(
				string(rune('A'+i)),
				"Classic Cars",
				"USA",
				float64(100+i),
				2004, 1,
			))
		}

		customers := TopCustomers(rows)
		require.Len(t, customers, 10)

		// O maior fica no topo, os dois menores ficam de fora
		assert.Equal(t, 111.0, customers[0].Revenue)
		assert.Equal(t, 102.0, customers[9].Revenue)
	})
}

func TestMonthlyTrend(t *testing.T) {
	rows := []*domain.TransactionRow{
		row("A", "Classic Cars", "USA", 100, 2004, 11),
		row("B", "Classic Cars", "USA", 50, 2004, 2),
		row("C", "Planes", "France", 70, 2003, 12),
		row("D", "Planes", "France", 30, 2004, 2),
		{CustomerName: "E", Sales: floatPtr(500)}, // sem ano/mês, fora da série
	}

	trend := MonthlyTrend(rows)
	require.Len(t, trend, 3)

	// Ordem cronológica ascendente com mês zero-padded
	assert.Equal(t, "2003-12", trend[0].Month)
	assert.Equal(t, "2004-02", trend[1].Month)
	assert.Equal(t, 80.0, trend[1].Revenue)
	assert.Equal(t, 36.0, trend[1].Profit)
	assert.Equal(t, "2004-11", trend[2].Month)
}

func TestComputeSnapshot(t *testing.T) {
	rows := []*domain.TransactionRow{
		row("Cliente X", "Classic Cars", "USA", 100, 2004, 1),
		row("Cliente Y", "Motorcycles", "France", 200, 2005, 2),
	}

	snapshot := ComputeSnapshot(rows)
	require.NotNil(t, snapshot)

	// KPIs escalares coerentes com as funções individuais
	assert.Equal(t, 300.0, snapshot.TotalRevenue)
	assert.Equal(t, 135.0, snapshot.TotalProfit)
	assert.Equal(t, 45.0, snapshot.ProfitMarginPct)
	assert.Equal(t, 25000.0, snapshot.CustomerAcquisitionCost)
	assert.False(t, snapshot.GeneratedAt.IsZero())

	require.NotNil(t, snapshot.Highlights)
	assert.Equal(t, 2, snapshot.Highlights.DistinctCustomers)
	assert.Equal(t, "Motorcycles", snapshot.Highlights.TopProductLine)
	assert.Equal(t, "France", snapshot.Highlights.TopCountry)
	assert.Equal(t, 200.0, snapshot.Highlights.TopCountryRevenue)
}

func TestComputeSnapshot_EmptySource(t *testing.T) {
	snapshot := ComputeSnapshot(nil)
	require.NotNil(t, snapshot)

	assert.Equal(t, 0.0, snapshot.TotalRevenue)
	assert.Equal(t, 0.0, snapshot.TotalProfit)
	assert.Equal(t, 0.0, snapshot.ProfitMarginPct)
	assert.Equal(t, 0.0, snapshot.CustomerAcquisitionCost)
	assert.Empty(t, snapshot.RevenueByProduct)
	assert.Empty(t, snapshot.RevenueByRegion)
	assert.Empty(t, snapshot.TopCustomers)
	assert.Empty(t, snapshot.MonthlyTrend)
}

func TestComputeSnapshot_Deterministic(t *testing.T) {
	rows := []*domain.TransactionRow{
		row("Cliente X", "Classic Cars", "USA", 100, 2004, 1),
		row("Cliente Y", "Motorcycles", "France", 200, 2005, 2),
		row("Cliente X", "Planes", "Spain", 300, 2005, 7),
	}

	first := ComputeSnapshot(rows)
	second := ComputeSnapshot(rows)

	// Mesmas linhas, mesmas métricas (timestamp à parte)
	assert.Equal(t, first.TotalRevenue, second.TotalRevenue)
	assert.Equal(t, first.RevenueByProduct, second.RevenueByProduct)
	assert.Equal(t, first.RevenueByRegion, second.RevenueByRegion)
	assert.Equal(t, first.TopCustomers, second.TopCustomers)
	assert.Equal(t, first.MonthlyTrend, second.MonthlyTrend)
	assert.Equal(t, first.CustomerStatus, second.CustomerStatus)
}

func TestService_SourceError(t *testing.T) {
	source := &dataset.StaticSource{Err: dataset.ErrSourceUnavailable}
	service := NewService(source)

	_, err := service.ComputeSnapshot(context.Background())
	assert.ErrorIs(t, err, dataset.ErrSourceUnavailable)

	_, err = service.TotalRevenue(context.Background())
	assert.ErrorIs(t, err, dataset.ErrSourceUnavailable)

	_, _, err = service.ProfitMetrics(context.Background())
	assert.ErrorIs(t, err, dataset.ErrSourceUnavailable)

	_, err = service.TopCustomers(context.Background())
	assert.ErrorIs(t, err, dataset.ErrSourceUnavailable)
}

func TestService_Accessors(t *testing.T) {
	source := dataset.NewStaticSource(
		row("Cliente X", "Classic Cars", "USA", 100, 2004, 1),
		row("Cliente Y", "Motorcycles", "France", 200, 2005, 2),
	)
	service := NewService(source)
	ctx := context.Background()

	revenue, err := service.TotalRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 300.0, revenue)

	profit, margin, err := service.ProfitMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 135.0, profit)
	assert.Equal(t, 45.0, margin)

	status, err := service.CustomerStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2005, status.LatestYear)

	trend, err := service.MonthlyTrend(ctx)
	require.NoError(t, err)
	require.Len(t, trend, 2)
	assert.Equal(t, "2004-01", trend[0].Month)
}
