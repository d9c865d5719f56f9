package event

import (
	"go.uber.org/zap"
)

// ConsoleSink forwards pipeline events to a zap logger. It is the sink
// plugged in by the CLI commands.
type ConsoleSink struct {
	logger *zap.Logger
}

// NewConsoleSink creates a sink logging to the given logger.
func NewConsoleSink(logger *zap.Logger) *ConsoleSink {
	return &ConsoleSink{logger: logger}
}

// Emit logs one event at a level matching its kind.
func (s *ConsoleSink) Emit(e Event) {
	switch e.Kind {
	case KindStatus:
		s.logger.Info(e.Message)
	case KindWarning:
		s.logger.Warn(e.Message)
	case KindError:
		s.logger.Error(e.Message)
	case KindDebug:
		s.logger.Debug(e.Message)
	case KindFinish:
		if e.Finish == nil {
			return
		}
		if e.Finish.Err != "" {
			s.logger.Error("pipeline finished with error", zap.String("error", e.Finish.Err))
			return
		}
		s.logger.Info("pipeline finished", zap.Int("summary_length", len(e.Finish.Summary)))
	}
}
