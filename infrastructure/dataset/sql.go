package dataset

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/salesmetrics/kpi-reporting-api/infrastructure/database/sqldb"
	"github.com/salesmetrics/kpi-reporting-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// SQLSource carrega linhas de uma tabela relacional com as mesmas colunas do
// arquivo de amostra (ORDERNUMBER, SALES, PRODUCTLINE, ...). O driver vem da
// conexão; o formato de placeholder segue o driver.
type SQLSource struct {
	conn  *sqldb.Connection
	table string
}

func NewSQLSource(conn *sqldb.Connection, table string) *SQLSource {
	return &SQLSource{
		conn:  conn,
		table: table,
	}
}

func (s *SQLSource) Load(ctx context.Context) ([]*domain.TransactionRow, error) {
	query, args, err := squirrel.
		Select(
			colOrderNumber,
			colOrderDate,
			colProductLine,
			colCountry,
			colCustomerName,
			colQuantity,
			colPriceEach,
			colSales,
			colYear,
			colMonth,
		).
		From(s.table).
		PlaceholderFormat(s.placeholderFormat()).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "erro ao consultar tabela %s: %v", s.table, err)
	}
	defer rows.Close()

	transactions := make([]*domain.TransactionRow, 0)
	skipped := 0

	for rows.Next() {
		row, err := s.scanRow(rows)
		if err != nil {
			// Linha não escaneável: pulada, não fatal
			skipped++
			continue
		}
		transactions = append(transactions, row)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	if skipped > 0 {
		logrus.WithFields(logrus.Fields{
			"table":   s.table,
			"skipped": skipped,
			"loaded":  len(transactions),
		}).Warn("Linhas malformadas ignoradas durante a carga da tabela")
	}

	return transactions, nil
}

func (s *SQLSource) placeholderFormat() squirrel.PlaceholderFormat {
	if s.conn.Driver() == "postgres" {
		return squirrel.Dollar
	}
	return squirrel.Question
}

func (s *SQLSource) scanRow(rows *sql.Rows) (*domain.TransactionRow, error) {
	var (
		orderNumber  sql.NullInt64
		orderDate    sql.NullString
		productLine  sql.NullString
		country      sql.NullString
		customerName sql.NullString
		quantity     sql.NullInt64
		priceEach    sql.NullFloat64
		sales        sql.NullFloat64
		year         sql.NullInt64
		month        sql.NullInt64
	)

	err := rows.Scan(
		&orderNumber,
		&orderDate,
		&productLine,
		&country,
		&customerName,
		&quantity,
		&priceEach,
		&sales,
		&year,
		&month,
	)
	if err != nil {
		return nil, err
	}

	row := &domain.TransactionRow{}

	if orderNumber.Valid {
		row.OrderNumber = &orderNumber.Int64
	}
	if orderDate.Valid {
		row.OrderDate, _ = cleanValue(orderDate.String)
	}
	if productLine.Valid {
		row.ProductLine, _ = cleanValue(productLine.String)
	}
	if country.Valid {
		row.Country, _ = cleanValue(country.String)
	}
	if customerName.Valid {
		row.CustomerName, _ = cleanValue(customerName.String)
	}
	if quantity.Valid {
		q := int(quantity.Int64)
		row.Quantity = &q
	}
	if priceEach.Valid {
		row.UnitPrice = &priceEach.Float64
	}
	if sales.Valid {
		row.Sales = &sales.Float64
	}
	if year.Valid {
		y := int(year.Int64)
		row.Year = &y
	}
	if month.Valid {
		m := int(month.Int64)
		row.Month = &m
	}

	return row, nil
}
