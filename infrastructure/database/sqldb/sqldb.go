package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/salesmetrics/kpi-reporting-api/internal/config"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
}

type Connection struct {
	*sql.DB

	driver string
}

// NewConnection abre a conexão com o banco configurado. Suporta os drivers
// "postgres" e "sqlite3"; para SQLite o DSN é o caminho do arquivo.
func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	driver := cfg.Driver
	dsn := cfg.DSN

	if driver == "sqlite" || driver == "sqlite3" {
		driver = "sqlite3"
		dsn = cfg.SQLitePath
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir conexão %s: %w", driver, err)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{DB: db, driver: driver}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Driver retorna o nome do driver em uso (decide o formato de placeholder
// das queries construídas com squirrel)
func (c *Connection) Driver() string {
	return c.driver
}
