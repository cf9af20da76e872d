package builder

import "github.com/sirupsen/logrus"

// Sink receives non-fatal per-source failures and debug traces. Reporting
// is fire-and-forget; a sink never influences the build.
type Sink interface {
	Report(msg string, err error)
	Trace(format string, args ...interface{})
}

type logrusSink struct {
	log *logrus.Logger
}

// NewLogrusSink adapts a logrus logger into a Sink. A nil logger uses the
// logrus standard logger.
func NewLogrusSink(log *logrus.Logger) Sink {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &logrusSink{log: log}
}

func (s *logrusSink) Report(msg string, err error) {
	s.log.WithError(err).Error(msg)
}

func (s *logrusSink) Trace(format string, args ...interface{}) {
	s.log.Debugf(format, args...)
}

type nopSink struct{}

// NopSink discards all diagnostics.
func NopSink() Sink { return nopSink{} }

func (nopSink) Report(string, error)         {}
func (nopSink) Trace(string, ...interface{}) {}
