package database

import (
	"context"
	"errors"
	"time"

	"github.com/Lounge-Area/fivemshop/pkg/logx"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// slowThreshold marks queries worth a warning regardless of level.
const slowThreshold = 200 * time.Millisecond

// QueryLogger routes GORM's query log through zerolog.
type QueryLogger struct {
	level gormlogger.LogLevel
}

// NewQueryLogger creates a query logger at the given GORM log level.
func NewQueryLogger(level gormlogger.LogLevel) *QueryLogger {
	return &QueryLogger{level: level}
}

// LogMode implements gorm logger.Interface.
func (l *QueryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &QueryLogger{level: level}
}

// Info implements gorm logger.Interface.
func (l *QueryLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		logx.Info().Msgf(msg, args...)
	}
}

// Warn implements gorm logger.Interface.
func (l *QueryLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		logx.Warn().Msgf(msg, args...)
	}
}

// Error implements gorm logger.Interface.
func (l *QueryLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		logx.Error().Msgf(msg, args...)
	}
}

// Trace implements gorm logger.Interface.
func (l *QueryLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logx.Error().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query failed")
	case elapsed > slowThreshold:
		logx.Warn().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("slow query")
	case l.level >= gormlogger.Info:
		logx.Debug().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query")
	}
}
