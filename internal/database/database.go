package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trivia/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/reflectx"
	_ "github.com/sijms/go-ora/v2" // registers "oracle"
)

// sqlDriverName maps the configured driver to the registered database/sql name
func sqlDriverName(driver string) string {
	if driver == config.DriverOracle {
		return "oracle"
	}
	return "pgx"
}

func init() {
	// sqlx does not know go-ora's driver name; it takes :name placeholders
	sqlx.BindDriver("oracle", sqlx.NAMED)
}

// NewSQLXDB opens and pings the configured database.
func NewSQLXDB(ctx context.Context, cfg config.DBConfig, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(sqlDriverName(cfg.Driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	if cfg.Driver == config.DriverOracle {
		// Oracle reports unquoted identifiers in upper case
		db.Mapper = reflectx.NewMapperTagFunc("db", strings.ToUpper, strings.ToUpper)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.Driver, err)
	}

	return db, nil
}

// HealthChecker exposes a context-aware ping for health endpoints.
type HealthChecker struct {
	db *sqlx.DB
}

func NewHealthChecker(db *sqlx.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

func (h *HealthChecker) Ping(ctx context.Context) error {
	return h.db.PingContext(ctx)
}
