package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/tiktok-sales-api/internal/config"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Código do Postgres para violação de restrição UNIQUE
const pqUniqueViolation = "23505"

type Conn interface {
	Queryer
	Builder() squirrel.StatementBuilderType
	Close() error
	Ping(context.Context) error
}

type Connection struct {
	*sql.DB
	driver string
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	// SQLite aceita apenas um escritor por vez
	if cfg.Driver == config.DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &Connection{DB: db, driver: cfg.Driver}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

func (c *Connection) Driver() string {
	return c.driver
}

// Builder retorna o construtor de queries com o placeholder do driver em uso
func (c *Connection) Builder() squirrel.StatementBuilderType {
	if c.driver == config.DriverPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// IsUniqueViolation informa se o erro veio de uma restrição UNIQUE, em qualquer driver suportado
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
			return strings.Contains(sqliteErr.Error(), "UNIQUE")
		}
	}

	return false
}
