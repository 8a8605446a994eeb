package domain

import "time"

// MetricSnapshot é o resultado imutável de uma passada completa de cálculo
// sobre a fonte de linhas. Cada renderizador (dashboard, PDF, e-mail,
// planilha) recebe a sua própria cópia; o snapshot nunca é mutado após o
// cálculo e não carrega identidade além do timestamp de geração.
type MetricSnapshot struct {
	GeneratedAt time.Time `json:"generated_at"`

	TotalRevenue            float64 `json:"total_revenue"`
	TotalProfit             float64 `json:"total_profit"`
	ProfitMarginPct         float64 `json:"profit_margin_pct"`
	CustomerAcquisitionCost float64 `json:"customer_acquisition_cost"`

	CustomerStatus *CustomerStatus `json:"customer_status"`

	RevenueByProduct []*GroupRevenue    `json:"revenue_by_product"`
	RevenueByRegion  []*GroupRevenue    `json:"revenue_by_region"`
	TopCustomers     []*CustomerRevenue `json:"top_customers"`
	MonthlyTrend     []*MonthlyRevenue  `json:"monthly_trend"`

	Highlights *Highlights `json:"highlights,omitempty"`
}

// GroupRevenue representa receita e lucro agregados por uma chave de grupo
// (linha de produto ou país), sempre ordenados por receita decrescente
type GroupRevenue struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

// CustomerRevenue representa a receita acumulada de um cliente e a
// quantidade de pedidos associados
type CustomerRevenue struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// MonthlyRevenue representa a receita e o lucro de um mês no formato "YYYY-MM"
type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

// CustomerStatus classifica clientes entre ativos e perdidos comparando os
// dois anos mais recentes presentes no snapshot (coorte de dois anos, não um
// modelo de churn multi-ano).
type CustomerStatus struct {
	PriorYear        int     `json:"prior_year"`
	LatestYear       int     `json:"latest_year"`
	ActiveCustomers  int     `json:"active_customers"`
	ChurnedCustomers int     `json:"churned_customers"`
	RetentionPct     float64 `json:"retention_pct"`
}

// Highlights resume os destaques usados no corpo do e-mail e no cabeçalho
// dos relatórios
type Highlights struct {
	TopProductLine    string  `json:"top_product_line,omitempty"`
	TopCountry        string  `json:"top_country,omitempty"`
	TopCountryRevenue float64 `json:"top_country_revenue,omitempty"`
	DistinctCustomers int     `json:"distinct_customers"`
}
