package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/tiktok-sales-api/infrastructure/database"
)

const (
	settingsTable = "settings"
)

//go:generate mockgen -source=settings.go -destination=mocks/settings_mock.go -package=mocks
type SettingsRepository interface {
	// Get retorna o valor da chave; found é false quando a linha não existe
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

type settingsRepository struct {
	conn database.Conn
}

func NewSettingsRepository(conn database.Conn) SettingsRepository {
	return &settingsRepository{
		conn: conn,
	}
}

func (r *settingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := r.conn.Builder().
		Select("value").
		From(settingsTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, errors.Wrap(err, "erro ao construir a query")
	}

	var value string
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "erro ao buscar configuração %s", key)
	}

	return value, true, nil
}

// Set grava o valor substituindo o anterior; não há histórico
func (r *settingsRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := r.conn.Builder().
		Insert(settingsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix(`
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = CURRENT_TIMESTAMP
		`).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao salvar configuração %s", key)
	}

	return nil
}
