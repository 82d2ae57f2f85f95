package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"procurement/internal/logger"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrUnsupportedDriver = errors.New("unsupported sql driver")

// Dialect maps a database/sql driver name to the goose dialect.
func Dialect(driver string) (string, error) {
	switch driver {
	case DriverPostgres:
		return "postgres", nil
	case DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// Run выполняет все миграции из встроенной папки sql
func Run(db *sql.DB, dialect string, log *zap.Logger) error {
	const op = "migrations.Run"

	log = logger.OrNop(log)
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log: log.Sugar()})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("%s: set dialect: %w", op, err)
	}

	log.Info("running migrations", logger.String("dialect", dialect))
	if err := goose.Up(db, "sql"); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

type gooseLogger struct {
	log *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...any) { l.log.Infof(format, v...) }

// Fatalf из goose не должен ронять процесс: ошибка вернется из Up.
func (l gooseLogger) Fatalf(format string, v ...any) { l.log.Errorf(format, v...) }
