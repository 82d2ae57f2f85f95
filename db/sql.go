package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"procurement/db/migrations"
)

const collectionsTable = "collections"

// SQLBackend хранит каждую коллекцию одной строкой таблицы collections.
type SQLBackend struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewSQLBackend(db *sqlx.DB) *SQLBackend {
	var ph sq.PlaceholderFormat = sq.Question
	if sqlx.BindType(db.DriverName()) == sqlx.DOLLAR {
		ph = sq.Dollar
	}
	return &SQLBackend{db: db, qb: sq.StatementBuilder.PlaceholderFormat(ph)}
}

// OpenSQL connects to postgres or sqlite and applies the schema migrations.
func OpenSQL(ctx context.Context, driver, dsn string, log *zap.Logger) (*sqlx.DB, error) {
	const op = "db.OpenSQL"

	dialect, err := migrations.Dialect(driver)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	conn, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: connect: %w", op, err)
	}
	if driver == migrations.DriverSQLite {
		// один писатель на файл
		conn.SetMaxOpenConns(1)
	}

	if err := migrations.Run(conn.DB, dialect, log); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return conn, nil
}

func (b *SQLBackend) Read(ctx context.Context, key string) ([]byte, error) {
	const op = "db.SQLBackend.Read"

	query, args, err := b.readQuery(key)
	if err != nil {
		return nil, fmt.Errorf("%s: build: %w", op, err)
	}

	var payload string
	if err := b.db.GetContext(ctx, &payload, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return []byte(payload), nil
}

func (b *SQLBackend) Write(ctx context.Context, key string, payload []byte) error {
	const op = "db.SQLBackend.Write"

	query, args, err := b.writeQuery(key, payload)
	if err != nil {
		return fmt.Errorf("%s: build: %w", op, err)
	}

	if _, err := b.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (b *SQLBackend) readQuery(key string) (string, []any, error) {
	return b.qb.
		Select("payload").
		From(collectionsTable).
		Where(sq.Eq{"name": key}).
		ToSql()
}

// writeQuery строит upsert; синтаксис ON CONFLICT общий для postgres и sqlite
func (b *SQLBackend) writeQuery(key string, payload []byte) (string, []any, error) {
	return b.qb.
		Insert(collectionsTable).
		Columns("name", "payload", "updated_at").
		Values(key, string(payload), sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (name) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP").
		ToSql()
}
