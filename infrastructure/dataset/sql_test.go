package dataset

import (
	"context"
	"testing"

	"github.com/salesmetrics/kpi-reporting-api/infrastructure/database/sqldb"
	"github.com/salesmetrics/kpi-reporting-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteConn abre um banco SQLite em memória já com a tabela de vendas
func newSQLiteConn(t *testing.T) *sqldb.Connection {
	t.Helper()

	conn, err := sqldb.NewConnection(context.Background(), config.Database{
		Driver:     "sqlite",
		SQLitePath: ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.ExecContext(context.Background(), `
		CREATE TABLE sales (
			ORDERNUMBER     INTEGER,
			ORDERDATE       TEXT,
			PRODUCTLINE     TEXT,
			COUNTRY         TEXT,
			CUSTOMERNAME    TEXT,
			QUANTITYORDERED INTEGER,
			PRICEEACH       REAL,
			SALES           REAL,
			YEAR_ID         INTEGER,
			MONTH_ID        INTEGER
		)
	`)
	require.NoError(t, err)

	return conn
}

func TestSQLSource_Load(t *testing.T) {
	conn := newSQLiteConn(t)

	_, err := conn.ExecContext(context.Background(), `
		INSERT INTO sales VALUES
			(10107, '2/24/2003 0:00', 'Motorcycles', 'USA', 'Land of Toys Inc.', 30, 95.70, 2871.00, 2003, 2),
			(10121, '5/7/2003 0:00', 'Motorcycles', 'France', 'Reims Collectables', 34, 81.35, 2765.90, 2003, 5)
	`)
	require.NoError(t, err)

	source := NewSQLSource(conn, "sales")
	rows, err := source.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	require.NotNil(t, first.OrderNumber)
	assert.Equal(t, int64(10107), *first.OrderNumber)
	assert.Equal(t, "Motorcycles", first.ProductLine)
	assert.Equal(t, "Land of Toys Inc.", first.CustomerName)
	require.NotNil(t, first.Sales)
	assert.Equal(t, 2871.00, *first.Sales)
	require.NotNil(t, first.Year)
	assert.Equal(t, 2003, *first.Year)
}

func TestSQLSource_Load_NullColumns(t *testing.T) {
	conn := newSQLiteConn(t)

	_, err := conn.ExecContext(context.Background(), `
		INSERT INTO sales (CUSTOMERNAME, SALES) VALUES ('Cliente X', NULL)
	`)
	require.NoError(t, err)

	source := NewSQLSource(conn, "sales")
	rows, err := source.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)

	// NULL no banco vira campo ausente, a linha sobrevive
	assert.Nil(t, rows[0].Sales)
	assert.False(t, rows[0].HasSales())
	assert.Nil(t, rows[0].Year)
	assert.Equal(t, "Cliente X", rows[0].CustomerName)
}

func TestSQLSource_Load_NullTokensInText(t *testing.T) {
	conn := newSQLiteConn(t)

	// Tokens nulos textuais também são normalizados na carga relacional
	_, err := conn.ExecContext(context.Background(), `
		INSERT INTO sales (CUSTOMERNAME, COUNTRY, SALES) VALUES ('  Cliente X  ', 'nan', 100.0)
	`)
	require.NoError(t, err)

	source := NewSQLSource(conn, "sales")
	rows, err := source.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cliente X", rows[0].CustomerName)
	assert.Equal(t, "", rows[0].Country)
}

func TestSQLSource_Load_EmptyTable(t *testing.T) {
	conn := newSQLiteConn(t)

	source := NewSQLSource(conn, "sales")
	rows, err := source.Load(context.Background())

	// Tabela vazia: zero linhas, sem erro
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSQLSource_Load_MissingTable(t *testing.T) {
	conn := newSQLiteConn(t)

	source := NewSQLSource(conn, "tabela_inexistente")
	rows, err := source.Load(context.Background())

	assert.Nil(t, rows)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}
