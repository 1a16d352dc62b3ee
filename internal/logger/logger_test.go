package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func Test_OnDefaultEnv_ShouldLogWithoutPanic(t *testing.T) {
	assert.NotNil(t, logger)
	assert.NotPanics(t, func() {
		Info("info line", zap.String("k", "v"))
		Warn("warn line")
		Error("error line", zap.Int("n", 1))
	})
}
