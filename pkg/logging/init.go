package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/narasux/bloghub/pkg/envs"
)

var initOnce sync.Once

// 访问日志
var accessLogger *logrus.Logger

// api 日志（Handler / Service）
var apiLogger *logrus.Logger

// sql 日志
var sqlLogger *logrus.Logger

const (
	LogTypeSystem = "system"
	LogTypeAccess = "access"
	LogTypeApi    = "api"
	LogTypeSql    = "sql"
)

func InitLogger() {
	initSystemLogger()

	initOnce.Do(func() {
		accessLogger = newJsonLogger(LogTypeAccess)
		apiLogger = newJsonLogger(LogTypeApi)
		sqlLogger = newJsonLogger(LogTypeSql)
	})
}

func GetSystemLogger() *logrus.Logger {
	return logrus.StandardLogger()
}

func GetAccessLogger() *logrus.Logger {
	if accessLogger == nil {
		return GetSystemLogger()
	}
	return accessLogger
}

func GetApiLogger() *logrus.Logger {
	if apiLogger == nil {
		return GetSystemLogger()
	}
	return apiLogger
}

func GetSqlLogger() *logrus.Logger {
	if sqlLogger == nil {
		return GetSystemLogger()
	}
	return sqlLogger
}

func initSystemLogger() {
	// 设置日志输出
	writer, err := getWriter(LogTypeSystem)
	if err != nil {
		panic(err)
	}
	logrus.SetOutput(writer)

	// 设置日志格式
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})

	// 设置日志级别
	level, err := logrus.ParseLevel(envs.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func newJsonLogger(logType string) *logrus.Logger {
	logger := logrus.New()
	// 设置日志输出
	writer, err := getWriter(logType)
	if err != nil {
		panic(err)
	}
	logger.SetOutput(writer)

	// 设置日志格式
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.DateTime,
		PrettyPrint:     false,
	})

	// 设置日志级别
	level, err := logrus.ParseLevel(envs.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
