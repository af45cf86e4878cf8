package app

import (
	"io"
	"os"

	"go.scnd.dev/open/stackwalk"
	"go.scnd.dev/open/stackwalk/compat/common"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type App struct {
	Verbose    bool
	ConfigPath string
	Output     io.Writer
	Logger     *zap.Logger
}

func New(verbose bool, configPath string, output io.Writer) *App {
	return &App{
		Verbose:    verbose,
		ConfigPath: configPath,
		Output:     output,
		Logger:     NewLogger(verbose),
	}
}

func NewLogger(verbose bool) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), level)
	return zap.New(core, zap.AddCaller())
}

func (r *App) Config() (*stackwalk.Config, error) {
	path := common.ConfigPath(r.ConfigPath)
	r.Logger.Debug("loading configuration", zap.String("path", path))

	return common.Config[stackwalk.Config](path)
}
