package logger

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger adapts zerolog to GORM's logger.Interface.
//
// Queries slower than slowThreshold are logged at warn level with the
// statement attached. Record-not-found errors are skipped; they are an
// expected outcome for lookups, not a fault.
type GormLogger struct {
	log           zerolog.Logger
	slowThreshold time.Duration
}

// NewGormLogger builds a GORM logger on top of the application logger.
func NewGormLogger(log zerolog.Logger, slowThreshold time.Duration) *GormLogger {
	return &GormLogger{
		log:           log.With().Str("component", "gorm").Logger(),
		slowThreshold: slowThreshold,
	}
}

// LogMode implements gormlogger.Interface. Level filtering is handled by
// zerolog, so the same logger is returned.
func (l *GormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.log.Info().Msgf(msg, args...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.log.Warn().Msgf(msg, args...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.log.Error().Msgf(msg, args...)
}

// Trace logs completed statements: errors at error level, slow queries
// at warn, the rest at debug.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.log.Error().
			Err(err).
			Dur("elapsed", elapsed).
			Int64("rows", rows).
			Str("sql", sql).
			Msg("query failed")

	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		sql, rows := fc()
		l.log.Warn().
			Dur("elapsed", elapsed).
			Dur("threshold", l.slowThreshold).
			Int64("rows", rows).
			Str("sql", sql).
			Msg("slow query")

	default:
		if l.log.GetLevel() <= zerolog.DebugLevel {
			sql, rows := fc()
			l.log.Debug().
				Dur("elapsed", elapsed).
				Int64("rows", rows).
				Str("sql", sql).
				Msg("query")
		}
	}
}
