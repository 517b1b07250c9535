package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"

	"github.com/narasux/bloghub/pkg/logging"
)

// 慢查询阈值
const slowSQLThreshold = 200 * time.Millisecond

// gorm 日志适配器，输出到 sql 日志
type sqlTraceLogger struct {
	level gormlogger.LogLevel
}

func newSQLTraceLogger() gormlogger.Interface {
	return &sqlTraceLogger{level: gormlogger.Warn}
}

// LogMode ...
func (l *sqlTraceLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.level = level
	return &newLogger
}

// Info ...
func (l *sqlTraceLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Info {
		logging.GetSqlLogger().Infof(msg, data...)
	}
}

// Warn ...
func (l *sqlTraceLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Warn {
		logging.GetSqlLogger().Warnf(msg, data...)
	}
}

// Error ...
func (l *sqlTraceLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Error {
		logging.GetSqlLogger().Errorf(msg, data...)
	}
}

// Trace 只记录慢查询与异常 SQL，ErrRecordNotFound 属于业务正常分支，不记录
func (l *sqlTraceLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gormlogger.ErrRecordNotFound):
		sql, rows := fc()
		logging.GetSqlLogger().WithFields(logrus.Fields{
			"sql": sql, "rows": rows, "latency": elapsed.Milliseconds(),
		}).Errorf("%s", err)
	case elapsed > slowSQLThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		logging.GetSqlLogger().WithFields(logrus.Fields{
			"sql": sql, "rows": rows, "latency": elapsed.Milliseconds(),
		}).Warn("slow sql")
	}
}
