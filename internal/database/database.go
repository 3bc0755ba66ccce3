// Package database establishes the connection to the relational store.
//
// The ORM (GORM) rides on a database/sql handle. For postgres that
// handle is built from a pgx connection config so query tracing and New
// Relic instrumentation attach at the driver level; for sqlite a pure-Go
// driver serves local development and tests.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/gameshelf/backend/internal/config"
	loggerPkg "github.com/gameshelf/backend/internal/logger"
	"github.com/gameshelf/backend/internal/model"
	"github.com/glebarez/sqlite"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database wraps the ORM handle and a logger for lifecycle logs.
type Database struct {
	ORM *gorm.DB
	log *zerolog.Logger
}

// multiTracer chains multiple pgx tracers.
//
// pgx supports a single Tracer per connection config. This adapter fans
// calls out so the New Relic tracer and the local SQL tracelogger can
// run together. Runtime interface checks keep it tolerant of tracers
// that only implement one side.
type multiTracer struct {
	tracers []any
}

func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryStart(context.Context, *pgx.Conn, pgx.TraceQueryStartData) context.Context
		}); ok {
			ctx = t.TraceQueryStart(ctx, conn, data)
		}
	}
	return ctx
}

func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData)
		}); ok {
			t.TraceQueryEnd(ctx, conn, data)
		}
	}
}

// DatabasePingTimeout is the number of seconds to wait for the startup
// ping before considering the database unreachable.
const DatabasePingTimeout = 10

// BuildDSN assembles the postgres connection string from config.
// The password is URL-escaped so special characters cannot break the DSN.
func BuildDSN(cfg *config.Config) string {
	hostPort := net.JoinHostPort(cfg.Database.Host, strconv.Itoa(cfg.Database.Port))
	encodedPassword := url.QueryEscape(cfg.Database.Password)

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.Database.User,
		encodedPassword,
		hostPort,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)
}

// New opens the database selected by config and returns the ORM wrapper.
//
// postgres:
//   - parse the DSN into a pgx connection config
//   - attach the New Relic tracer when the agent is enabled
//   - in the local env, also attach the SQL tracelogger (chained through
//     multiTracer when both exist)
//   - register the config with the pgx stdlib driver, open database/sql,
//     apply pool settings, and hand the handle to GORM
//
// sqlite:
//   - open the file with foreign keys enforced and auto-migrate the
//     schema (development convenience; postgres uses tern migrations)
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Database, error) {
	gormConfig := &gorm.Config{
		Logger: loggerPkg.NewGormLogger(*logger, cfg.Observability.Logging.SlowQueryThreshold),

		// postgres errors keep their SQLSTATE metadata for sqlerr to
		// parse; sqlite errors carry nothing worth preserving, so they
		// are translated into gorm's error values, which sqlerr maps.
		TranslateError: cfg.Database.Driver == "sqlite",
	}

	var orm *gorm.DB
	var err error

	switch cfg.Database.Driver {
	case "sqlite":
		dsn := cfg.Database.Path + "?_pragma=foreign_keys(1)"
		orm, err = gorm.Open(sqlite.Open(dsn), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}

		// Pool limits must be in place before the schema is created: an
		// in-memory database exists per connection, so anything beyond a
		// pinned pool would hand out connections without the schema.
		sqlDB, derr := orm.DB()
		if derr != nil {
			return nil, fmt.Errorf("failed to access sqlite handle: %w", derr)
		}
		applyPoolSettings(sqlDB, cfg)

		if err := AutoMigrate(orm); err != nil {
			return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
		}

	default: // postgres
		pgxConfig, perr := pgx.ParseConfig(BuildDSN(cfg))
		if perr != nil {
			return nil, fmt.Errorf("failed to parse pgx config: %w", perr)
		}

		if loggerService != nil && loggerService.GetApplication() != nil {
			pgxConfig.Tracer = nrpgx5.NewTracer()
		}

		// Local env gets per-query SQL logging. Very noisy, hence gated.
		if cfg.Primary.Env == "local" {
			globalLevel := logger.GetLevel()
			pgxLogger := loggerPkg.NewPgxLogger(globalLevel)

			localTracer := &tracelog.TraceLog{
				Logger:   pgxzero.NewLogger(pgxLogger),
				LogLevel: loggerPkg.GetPgxTraceLogLevel(globalLevel),
			}

			if pgxConfig.Tracer != nil {
				pgxConfig.Tracer = &multiTracer{
					tracers: []any{pgxConfig.Tracer, localTracer},
				}
			} else {
				pgxConfig.Tracer = localTracer
			}
		}

		connStr := stdlib.RegisterConnConfig(pgxConfig)
		sqlDB, serr := sql.Open("pgx", connStr)
		if serr != nil {
			return nil, fmt.Errorf("failed to open database handle: %w", serr)
		}

		applyPoolSettings(sqlDB, cfg)

		orm, err = gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to open gorm over pgx: %w", err)
		}
	}

	database := &Database{
		ORM: orm,
		log: logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err := database.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Str("driver", cfg.Database.Driver).Msg("connected to the database")

	return database, nil
}

func applyPoolSettings(sqlDB *sql.DB, cfg *config.Config) {
	if cfg.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}
	if cfg.Database.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)
	}
	if cfg.Database.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second)
	}
}

// AutoMigrate creates or updates the schema from the model structs.
// Used by the sqlite driver path and by tests.
func AutoMigrate(orm *gorm.DB) error {
	return orm.AutoMigrate(&model.Publisher{}, &model.Category{}, &model.Game{})
}

// Ping verifies connectivity on the underlying database/sql handle.
func (db *Database) Ping(ctx context.Context) error {
	sqlDB, err := db.ORM.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (db *Database) Close() error {
	if db.log != nil {
		db.log.Info().Msg("closing database connection pool")
	}
	sqlDB, err := db.ORM.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
