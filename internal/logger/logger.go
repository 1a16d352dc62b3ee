package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
)

const logEnvKey = "LOG_ENV"

var logger *zap.Logger

// Anything other than prod gets the readable development logger, so a
// mistyped LOG_ENV never leaves the process without logging.
func init() {
	var err error
	switch os.Getenv(logEnvKey) {
	case "prod":
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("cannot initialize finova logger: ", err)
	}
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
}
