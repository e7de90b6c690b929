package logsvc

import (
	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trezcool/masomo-calendar/core"
	"github.com/trezcool/masomo-calendar/core/calendar"
)

// NewZapLogger returns a JSON production logger for PROD and a colored development logger otherwise.
func NewZapLogger(env string) *zap.Logger {
	var config zap.Config
	if env == "PROD" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.OutputPaths = []string{"stdout"}

	logger, err := config.Build()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return logger
}

type RollbarLogger struct {
	zap *zap.SugaredLogger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(zl *zap.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	rollbar.SetEnabled(conf.RollbarToken != "" && !conf.TestMode)
	return &RollbarLogger{zap: zl.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// expected fmt: msg | error, map[string]interface{}, calendar.Caller
func (l RollbarLogger) prepare(msg string, args []interface{}) (rbArgs, fields []interface{}) {
	var callerSet bool
	rbArgs = make([]interface{}, 0, len(args)+1)
	rbArgs = append(rbArgs, msg)
	for _, arg := range args {
		switch v := arg.(type) {
		case calendar.Caller:
			if !callerSet { // only set one person
				rollbar.SetPerson(v.ID, string(v.Role), "")
				fields = append(fields, "caller", v.ID, "role", v.Role)
				callerSet = true
			}
		case error:
			rbArgs = append(rbArgs, v)
			fields = append(fields, zap.Error(v))
		case map[string]interface{}:
			rbArgs = append(rbArgs, v)
			for k, val := range v {
				fields = append(fields, k, val)
			}
		default:
			rbArgs = append(rbArgs, v)
			fields = append(fields, zap.Any("extra", v))
		}
	}
	if !callerSet {
		rollbar.ClearPerson()
	}
	return rbArgs, fields
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) {
	rbArgs, fields := l.prepare(msg, args)
	rollbar.Debug(rbArgs...)
	l.zap.Debugw(msg, fields...)
}

func (l RollbarLogger) Info(msg string, args ...interface{}) {
	rbArgs, fields := l.prepare(msg, args)
	rollbar.Info(rbArgs...)
	l.zap.Infow(msg, fields...)
}

func (l RollbarLogger) Warn(msg string, args ...interface{}) {
	rbArgs, fields := l.prepare(msg, args)
	rollbar.Warning(rbArgs...)
	l.zap.Warnw(msg, fields...)
}

func (l RollbarLogger) Error(msg string, args ...interface{}) {
	rbArgs, fields := l.prepare(msg, args)
	rollbar.Error(rbArgs...)
	l.zap.Errorw(msg, fields...)
}

func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	rbArgs, fields := l.prepare(msg, args)
	rollbar.Critical(rbArgs...)
	rollbar.Wait()
	l.zap.Fatalw(msg, fields...)
}

// Sync flushes buffered log entries and pending rollbar reports.
func (l RollbarLogger) Sync() {
	rollbar.Wait()
	_ = l.zap.Sync()
}
