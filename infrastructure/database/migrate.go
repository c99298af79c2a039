package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-sales-api/internal/config"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// RunMigrations aplica as migrações do driver configurado usando uma conexão própria
func RunMigrations(cfg config.Database) error {
	migrateDB, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return fmt.Errorf("erro ao abrir conexão de migração: %w", err)
	}
	defer migrateDB.Close()

	var driver migratedb.Driver
	switch cfg.Driver {
	case config.DriverPostgres:
		driver, err = postgres.WithInstance(migrateDB, &postgres.Config{})
	case config.DriverSQLite:
		driver, err = migratesqlite.WithInstance(migrateDB, &migratesqlite.Config{})
	default:
		return fmt.Errorf("driver de banco de dados não suportado: %q", cfg.Driver)
	}
	if err != nil {
		return fmt.Errorf("erro ao criar driver de migração: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations/"+cfg.Driver)
	if err != nil {
		return fmt.Errorf("erro ao carregar migrações embutidas: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, cfg.Driver, driver)
	if err != nil {
		return fmt.Errorf("erro ao criar instância de migração: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("erro ao executar migrações: %w", err)
	}

	version, dirty, err := m.Version()
	if err == nil {
		logrus.WithFields(logrus.Fields{
			"driver":  cfg.Driver,
			"version": version,
			"dirty":   dirty,
		}).Info("Migrações aplicadas")
	}

	return nil
}
