package zap

import (
	"github.com/lintang-b-s/stoer-wagner-partitioner/pkg/logger/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console zap logger writing to stderr, stdout is reserved for results.
func New(cfg config.Configuration) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zapcore.Level(cfg.Level))
	zapCfg.Encoding = "console"
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)
	zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zapCfg.Sampling = nil

	return zapCfg.Build()
}
