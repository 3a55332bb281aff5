// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-item-transfer/internal/config"
	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/migrations"
)

// Dialect names the SQL flavour behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
)

const (
	pingRetries     = 5
	pingBaseBackoff = 200 * time.Millisecond
)

// DB wraps *sql.DB with the dialect-specific query builder and error
// classification used by the repositories.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database named by cfg.DSN, waits until it answers a ping
// and returns the wrapper. Transient connection failures are retried with
// exponential backoff.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, driver, dataSource, err := ParseDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error parsing database DSN")
		return nil, err
	}

	conn, err := sql.Open(driver, dataSource)
	if err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	db := wrapDB(conn, dialect, log)
	if dialect == DialectSQLite {
		// one writer at a time, and a single shared handle for :memory:
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(4)
	}

	if err = db.ping(ctx); err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewDB").Str("dialect", string(dialect)).Msg("connected to database successfully")

	return db, nil
}

// wrapDB builds a [DB] around an already opened connection pool.
func wrapDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

func (db *DB) ping(ctx context.Context) error {
	backoff := retry.WithMaxRetries(pingRetries, retry.NewExponential(pingBaseBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := db.PingContext(ctx)
		if err == nil {
			return nil
		}
		if db.errorClassificator.Classify(err) == Retryable || isConnectionError(err) {
			db.logger.Warn().Err(err).Str("func", "*DB.ping").Msg("database is not ready, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

// Dialect reports the SQL flavour of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, string(db.dialect))
}

// ParseDSN maps a DSN to its dialect, database/sql driver name and the data
// source string that driver expects.
//
//	postgres://..., postgresql://...   -> pgx
//	sqlite:///site.db                  -> sqlite3 "site.db" (relative)
//	sqlite:////var/lib/site.db         -> sqlite3 "/var/lib/site.db"
//	file:..., *.db, *.sqlite, :memory: -> sqlite3
//
// SQLite data sources get foreign key enforcement switched on.
func ParseDSN(dsn string) (Dialect, string, string, error) {
	switch {
	case dsn == "":
		return "", "", "", fmt.Errorf("%w: empty DSN", ErrUnsupportedDSN)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, "pgx", dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		path = strings.TrimPrefix(path, "/")
		if path == "" {
			return "", "", "", fmt.Errorf("%w: empty sqlite path", ErrUnsupportedDSN)
		}
		return DialectSQLite, "sqlite3", withForeignKeys(path), nil
	case strings.HasPrefix(dsn, "file:"), dsn == ":memory:", hasSQLiteExt(dsn):
		return DialectSQLite, "sqlite3", withForeignKeys(dsn), nil
	}

	return "", "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
}

func hasSQLiteExt(dsn string) bool {
	path, _, _ := strings.Cut(dsn, "?")
	return strings.HasSuffix(path, ".db") || strings.HasSuffix(path, ".sqlite") || strings.HasSuffix(path, ".sqlite3")
}

func withForeignKeys(dataSource string) string {
	if strings.Contains(dataSource, "_foreign_keys=") || strings.Contains(dataSource, "_fk=") {
		return dataSource
	}
	if strings.Contains(dataSource, "?") {
		return dataSource + "&_foreign_keys=1"
	}
	return dataSource + "?_foreign_keys=1"
}

// redactDSN drops everything after the scheme so credentials never reach logs.
func redactDSN(dsn string) string {
	if scheme, _, ok := strings.Cut(dsn, "://"); ok {
		return scheme + "://***"
	}
	return "***"
}

func isConnectionError(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
