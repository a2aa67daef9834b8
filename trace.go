package sudosat

import "github.com/sirupsen/logrus"

// A Tracer observes the search as it runs. Level is the decision depth
// at which the event happened; level 0 is construction-time propagation.
type Tracer interface {
	Decide(lit, level int)
	Conflict(level int)
	Backtrack(level int)
}

// LogTracer reports search events through a logrus logger at debug
// level.
type LogTracer struct {
	Log logrus.FieldLogger
}

func (t LogTracer) Decide(lit, level int) {
	t.Log.WithFields(logrus.Fields{"lit": lit, "level": level}).Debug("decide")
}

func (t LogTracer) Conflict(level int) {
	t.Log.WithField("level", level).Debug("conflict")
}

func (t LogTracer) Backtrack(level int) {
	t.Log.WithField("level", level).Debug("backtrack")
}
