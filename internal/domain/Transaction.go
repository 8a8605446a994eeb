package domain

// Constantes de negócio assumidas pelo motor de métricas.
// AssumedMarginRate: o lucro é modelado como 45% da receita enquanto não
// houver dados reais de custo na fonte. É uma simplificação, não um
// custo medido.
// AssumedMarketingSpend: gasto fixo assumido para o cálculo do CAC.
const (
	AssumedMarginRate     = 0.45
	AssumedMarketingSpend = 500.0
)

// TransactionRow representa uma linha normalizada da base de vendas.
// Campos numéricos são ponteiros: nil indica valor ausente ou não
// coercível: a linha é mantida, mas o campo fica de fora das somas.
type TransactionRow struct {
	OrderNumber  *int64   `json:"order_number"`
	OrderDate    string   `json:"order_date,omitempty"`
	ProductLine  string   `json:"product_line"`
	Country      string   `json:"country"`
	CustomerName string   `json:"customer_name"`
	Quantity     *int     `json:"quantity"`
	UnitPrice    *float64 `json:"unit_price"`
	Sales        *float64 `json:"sales"`
	Year         *int     `json:"year"`
	Month        *int     `json:"month"`
}

// HasSales indica se a linha possui receita válida para entrar nas agregações
func (t *TransactionRow) HasSales() bool {
	return t != nil && t.Sales != nil
}
