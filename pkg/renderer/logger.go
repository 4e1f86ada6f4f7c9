package renderer

import "go.uber.org/zap"

// ZapLogger implements core.Logger by forwarding to a zap.SugaredLogger,
// the same adapter role the teacher's DefaultLogger plays for stdout
// (progressive.go), swapped out for structured logging.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger builds a core.Logger backed by zap. development selects
// zap.NewDevelopment's console encoder over NewProduction's JSON one.
func NewZapLogger(development bool) (*ZapLogger, error) {
	var zl *zap.Logger
	var err error
	if development {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: zl.Sugar()}, nil
}

// Printf implements core.Logger.
func (l *ZapLogger) Printf(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}
