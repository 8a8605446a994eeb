package metricizing

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/salesmetrics/kpi-reporting-api/infrastructure/dataset"
	"github.com/salesmetrics/kpi-reporting-api/internal/domain"
	"github.com/salesmetrics/kpi-reporting-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// topCustomersLimit limita o ranking de clientes aos 10 maiores por receita
const topCustomersLimit = 10

// unspecifiedGroup recebe a receita de linhas sem chave de agrupamento,
// preservando a aditividade: a soma dos grupos é sempre a receita total.
// Equivale ao grupo NULL de um GROUP BY relacional.
const unspecifiedGroup = "Não informado"

// Service implementa Engine sobre uma RowSource explícita. O serviço não
// guarda estado entre invocações: cada chamada recomputa a partir da fonte,
// e qualquer política de memoização é responsabilidade do chamador.
type Service struct {
	source dataset.RowSource
}

func NewService(source dataset.RowSource) Engine {
	return &Service{source: source}
}

func (s *Service) load(ctx context.Context) ([]*domain.TransactionRow, error) {
	rows, err := s.source.Load(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar linhas da fonte de dados")
		return nil, err
	}
	return rows, nil
}

// ComputeSnapshot carrega as linhas uma única vez e deriva todas as métricas
// do mesmo conjunto imutável
func (s *Service) ComputeSnapshot(ctx context.Context) (*domain.MetricSnapshot, error) {
	rows, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := ComputeSnapshot(rows)

	logrus.WithFields(logrus.Fields{
		"rows":          len(rows),
		"total_revenue": snapshot.TotalRevenue,
		"products":      len(snapshot.RevenueByProduct),
		"regions":       len(snapshot.RevenueByRegion),
	}).Debug("Snapshot de métricas calculado")

	return snapshot, nil
}

func (s *Service) TotalRevenue(ctx context.Context) (float64, error) {
	rows, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return TotalRevenue(rows), nil
}

func (s *Service) ProfitMetrics(ctx context.Context) (float64, float64, error) {
	rows, err := s.load(ctx)
	if err != nil {
		return 0, 0, err
	}
	profit, margin := ProfitMetrics(rows)
	return profit, margin, nil
}

func (s *Service) AcquisitionCost(ctx context.Context) (float64, error) {
	rows, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return AcquisitionCost(rows), nil
}

func (s *Service) CustomerStatus(ctx context.Context) (*domain.CustomerStatus, error) {
	rows, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return CustomerStatus(rows), nil
}

func (s *Service) RevenueByProduct(ctx context.Context) ([]*domain.GroupRevenue, error) {
	rows, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return RevenueByProduct(rows), nil
}

func (s *Service) RevenueByRegion(ctx context.Context) ([]*domain.GroupRevenue, error) {
	rows, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return RevenueByRegion(rows), nil
}

func (s *Service) TopCustomers(ctx context.Context) ([]*domain.CustomerRevenue, error) {
	rows, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return TopCustomers(rows), nil
}

func (s *Service) MonthlyTrend(ctx context.Context) ([]*domain.MonthlyRevenue, error) {
	rows, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return MonthlyTrend(rows), nil
}

// ---------------------------------------------------------------------------
// Funções puras de agregação. Todas operam sobre o mesmo slice de linhas sem
// modificá-lo e podem ser avaliadas em paralelo sobre o mesmo snapshot.
// ---------------------------------------------------------------------------

// ComputeSnapshot deriva todas as métricas de um conjunto de linhas já
// carregado. Fonte vazia produz somas zero e listas vazias, nunca erro.
func ComputeSnapshot(rows []*domain.TransactionRow) *domain.MetricSnapshot {
	totalProfit, marginPct := ProfitMetrics(rows)

	byProduct := RevenueByProduct(rows)
	byRegion := RevenueByRegion(rows)

	return &domain.MetricSnapshot{
		GeneratedAt:             time.Now(),
		TotalRevenue:            TotalRevenue(rows),
		TotalProfit:             totalProfit,
		ProfitMarginPct:         marginPct,
		CustomerAcquisitionCost: AcquisitionCost(rows),
		CustomerStatus:          CustomerStatus(rows),
		RevenueByProduct:        byProduct,
		RevenueByRegion:         byRegion,
		TopCustomers:            TopCustomers(rows),
		MonthlyTrend:            MonthlyTrend(rows),
		Highlights:              computeHighlights(rows, byProduct, byRegion),
	}
}

// TotalRevenue soma a receita de todas as linhas válidas, em 2 casas
func TotalRevenue(rows []*domain.TransactionRow) float64 {
	var total float64
	for _, row := range rows {
		if row.HasSales() {
			total += *row.Sales
		}
	}
	return utils.RoundWithTwoDecimalPlace(total)
}

// ProfitMetrics calcula lucro total (receita × margem assumida de 45%) e a
// margem percentual. Receita zero reporta margem 0 em vez de dividir por zero.
func ProfitMetrics(rows []*domain.TransactionRow) (totalProfit float64, marginPct float64) {
	var revenue, profit float64
	for _, row := range rows {
		if row.HasSales() {
			revenue += *row.Sales
			profit += *row.Sales * domain.AssumedMarginRate
		}
	}

	totalProfit = utils.RoundWithTwoDecimalPlace(profit)

	if revenue > 0 {
		marginPct = utils.RoundWithTwoDecimalPlace(profit / revenue * 100)
	}

	return totalProfit, marginPct
}

// AcquisitionCost aproxima o CAC como gasto fixo assumido dividido pela
// contagem de clientes distintos, escalado por 100. Sem clientes, reporta 0.
func AcquisitionCost(rows []*domain.TransactionRow) float64 {
	customers := distinctCustomers(rows)
	if len(customers) == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(domain.AssumedMarketingSpend / float64(len(customers)) * 100)
}

// CustomerStatus compara os dois anos mais recentes presentes na base:
// ativo = transacionou nos dois anos; perdido = transacionou apenas no
// primeiro. A política é única, "dois anos completos mais recentes",
// independente do ponto de chamada.
func CustomerStatus(rows []*domain.TransactionRow) *domain.CustomerStatus {
	customersByYear := make(map[int]map[string]struct{})

	for _, row := range rows {
		if row.CustomerName == "" || row.Year == nil {
			continue
		}

		year := *row.Year
		if customersByYear[year] == nil {
			customersByYear[year] = make(map[string]struct{})
		}
		customersByYear[year][row.CustomerName] = struct{}{}
	}

	status := &domain.CustomerStatus{}

	years := make([]int, 0, len(customersByYear))
	for year := range customersByYear {
		years = append(years, year)
	}
	sort.Ints(years)

	if len(years) == 0 {
		return status
	}

	status.LatestYear = years[len(years)-1]

	// Com um único ano presente não há coorte anterior para comparar:
	// retenção reportada como 0, sem erro
	if len(years) < 2 {
		return status
	}

	status.PriorYear = years[len(years)-2]

	prior := customersByYear[status.PriorYear]
	latest := customersByYear[status.LatestYear]

	for customer := range prior {
		if _, ok := latest[customer]; ok {
			status.ActiveCustomers++
		} else {
			status.ChurnedCustomers++
		}
	}

	if total := status.ActiveCustomers + status.ChurnedCustomers; total > 0 {
		status.RetentionPct = utils.RoundWithOneDecimalPlace(
			float64(status.ActiveCustomers) / float64(total) * 100,
		)
	}

	return status
}

// RevenueByProduct agrupa receita e lucro por linha de produto, ordenados
// por receita decrescente com desempate pela chave ascendente
func RevenueByProduct(rows []*domain.TransactionRow) []*domain.GroupRevenue {
	return groupRevenue(rows, func(row *domain.TransactionRow) string {
		return row.ProductLine
	})
}

// RevenueByRegion agrupa receita e lucro por país, mesma ordenação
func RevenueByRegion(rows []*domain.TransactionRow) []*domain.GroupRevenue {
	return groupRevenue(rows, func(row *domain.TransactionRow) string {
		return row.Country
	})
}

func groupRevenue(rows []*domain.TransactionRow, key func(*domain.TransactionRow) string) []*domain.GroupRevenue {
	totals := make(map[string]float64)

	for _, row := range rows {
		if !row.HasSales() {
			continue
		}

		k := key(row)
		if k == "" {
			k = unspecifiedGroup
		}
		totals[k] += *row.Sales
	}

	groups := make([]*domain.GroupRevenue, 0, len(totals))
	for name, revenue := range totals {
		groups = append(groups, &domain.GroupRevenue{
			Name:    name,
			Revenue: utils.RoundWithTwoDecimalPlace(revenue),
			Profit:  utils.RoundWithTwoDecimalPlace(revenue * domain.AssumedMarginRate),
		})
	}

	// Ordenação determinística: receita decrescente, chave ascendente
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Revenue != groups[j].Revenue {
			return groups[i].Revenue > groups[j].Revenue
		}
		return groups[i].Name < groups[j].Name
	})

	return groups
}

// TopCustomers agrupa por cliente, soma receita e conta pedidos, e devolve
// os 10 maiores por receita (desempate pelo nome ascendente)
func TopCustomers(rows []*domain.TransactionRow) []*domain.CustomerRevenue {
	type accumulator struct {
		revenue float64
		orders  int
	}

	totals := make(map[string]*accumulator)

	for _, row := range rows {
		if !row.HasSales() || row.CustomerName == "" {
			continue
		}

		acc, ok := totals[row.CustomerName]
		if !ok {
			acc = &accumulator{}
			totals[row.CustomerName] = acc
		}
		acc.revenue += *row.Sales
		acc.orders++
	}

	customers := make([]*domain.CustomerRevenue, 0, len(totals))
	for name, acc := range totals {
		customers = append(customers, &domain.CustomerRevenue{
			Name:    name,
			Revenue: utils.RoundWithTwoDecimalPlace(acc.revenue),
			Orders:  acc.orders,
		})
	}

	sort.Slice(customers, func(i, j int) bool {
		if customers[i].Revenue != customers[j].Revenue {
			return customers[i].Revenue > customers[j].Revenue
		}
		return customers[i].Name < customers[j].Name
	})

	if len(customers) > topCustomersLimit {
		customers = customers[:topCustomersLimit]
	}

	return customers
}

// MonthlyTrend agrupa por (ano, mês) no formato "YYYY-MM", em ordem
// cronológica ascendente. Linhas sem ano ou mês ficam de fora da série.
func MonthlyTrend(rows []*domain.TransactionRow) []*domain.MonthlyRevenue {
	totals := make(map[string]float64)

	for _, row := range rows {
		if !row.HasSales() || row.Year == nil || row.Month == nil {
			continue
		}

		month := fmt.Sprintf("%04d-%02d", *row.Year, *row.Month)
		totals[month] += *row.Sales
	}

	trend := make([]*domain.MonthlyRevenue, 0, len(totals))
	for month, revenue := range totals {
		trend = append(trend, &domain.MonthlyRevenue{
			Month:   month,
			Revenue: utils.RoundWithTwoDecimalPlace(revenue),
			Profit:  utils.RoundWithTwoDecimalPlace(revenue * domain.AssumedMarginRate),
		})
	}

	// A chave zero-padded torna a ordem lexicográfica igual à cronológica
	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Month < trend[j].Month
	})

	return trend
}

func distinctCustomers(rows []*domain.TransactionRow) map[string]struct{} {
	customers := make(map[string]struct{})
	for _, row := range rows {
		if row.CustomerName != "" {
			customers[row.CustomerName] = struct{}{}
		}
	}
	return customers
}

func computeHighlights(
	rows []*domain.TransactionRow,
	byProduct []*domain.GroupRevenue,
	byRegion []*domain.GroupRevenue,
) *domain.Highlights {
	highlights := &domain.Highlights{
		DistinctCustomers: len(distinctCustomers(rows)),
	}

	if len(byProduct) > 0 {
		highlights.TopProductLine = byProduct[0].Name
	}

	if len(byRegion) > 0 {
		highlights.TopCountry = byRegion[0].Name
		highlights.TopCountryRevenue = byRegion[0].Revenue
	}

	return highlights
}
