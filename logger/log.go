package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

// DebugEnv enables debug output when set to anything but false or disable.
const DebugEnv = "ASJSON_DEBUG"

var logger = zap.NewNop().Sugar()

// Init builds the global logger; debug output is enabled by the flag or the ASJSON_DEBUG variable.
func Init(debug bool) error {
	if !debug {
		envDebug := strings.ToLower(os.Getenv(DebugEnv))
		debug = len(envDebug) > 0 && !(envDebug == "disable" || envDebug == "false")
	}
	var config zap.Config
	if debug {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	l, err := config.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(l)
	logger = zap.S()
	return nil
}

func Debugw(msg string, keysAndValues ...interface{}) {
	logger.Debugw(msg, keysAndValues...)
}

func Debugf(template string, args ...interface{}) {
	logger.Debugf(template, args...)
}

func Sync() {
	_ = logger.Sync()
}
