// Package dataset implementa as fontes de linhas de venda do motor de
// métricas: arquivo delimitado (CSV), tabela relacional (Postgres/SQLite) e
// uma fonte estática em memória para testes.
package dataset

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/salesmetrics/kpi-reporting-api/internal/domain"
)

// ErrSourceUnavailable indica que a fonte não pôde ser aberta ou lida.
// Semanticamente distinto de uma fonte vazia: "sem dados" retorna zero
// linhas sem erro; "sem acesso aos dados" retorna este erro.
var ErrSourceUnavailable = errors.New("dataset: fonte indisponível")

// RowSource fornece a sequência de linhas de transação normalizadas.
// Load lê a fonte inteira de uma vez; o snapshot resultante é imutável do
// ponto de vista do motor de métricas.
type RowSource interface {
	Load(ctx context.Context) ([]*domain.TransactionRow, error)
}

// Colunas reconhecidas da base de vendas
const (
	colOrderNumber  = "ORDERNUMBER"
	colSales        = "SALES"
	colProductLine  = "PRODUCTLINE"
	colCountry      = "COUNTRY"
	colCustomerName = "CUSTOMERNAME"
	colYear         = "YEAR_ID"
	colMonth        = "MONTH_ID"
	colQuantity     = "QUANTITYORDERED"
	colPriceEach    = "PRICEEACH"
	colOrderDate    = "ORDERDATE"
)

// cleanValue normaliza um valor textual: remove espaços e converte tokens
// nulos ("", "nan", "none", "null", sem distinção de caixa) em ausente
func cleanValue(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	switch strings.ToLower(s) {
	case "", "nan", "none", "null":
		return "", false
	}
	return s, true
}

// toFloat converte um valor limpo para float64; falha de coerção vira campo
// ausente, nunca erro: a linha segue viva nas demais colunas
func toFloat(raw string) *float64 {
	s, ok := cleanValue(raw)
	if !ok {
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// toInt aceita também representações decimais ("2004.0"), como aparecem em
// extrações de planilha
func toInt(raw string) *int {
	s, ok := cleanValue(raw)
	if !ok {
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}

	i := int(f)
	return &i
}

func toInt64(raw string) *int64 {
	i := toInt(raw)
	if i == nil {
		return nil
	}

	v := int64(*i)
	return &v
}

// StaticSource é uma fonte em memória, usada em testes e como dublê de uma
// base real, cumprindo o contrato de RowSource sem I/O
type StaticSource struct {
	Rows []*domain.TransactionRow
	Err  error
}

func NewStaticSource(rows ...*domain.TransactionRow) *StaticSource {
	return &StaticSource{Rows: rows}
}

func (s *StaticSource) Load(_ context.Context) ([]*domain.TransactionRow, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Rows, nil
}
