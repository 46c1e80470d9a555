// Log: a structured-logging sink on top of logrus.
package trace

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlmatch/core"
)

// Log renders tracer events as structured log lines: Message events
// at info level, every other event at debug level.
// Useful when watching a solver from a terminal; too chatty for
// production runs unless the logger filters by level.
type Log struct {
	logger logrus.FieldLogger
}

// NewLog returns a sink writing through logger; a nil logger uses the
// logrus standard logger.
func NewLog(logger logrus.FieldLogger) *Log {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Log{logger: logger}
}

func (l *Log) Step(name string) {
	l.logger.WithField("step", name).Debug("step")
}

func (l *Log) Message(text string) {
	l.logger.Info(text)
}

func (l *Log) Data(name string, payload any) {
	l.logger.WithFields(logrus.Fields{"name": name, "payload": payload}).Debug("data")
}

func (l *Log) CurrentNode(v core.VertexID) {
	l.logger.WithField("node", v).Debug("current node")
}

func (l *Log) CurrentEdge(e core.EdgeID) {
	l.logger.WithField("edge", e).Debug("current edge")
}

func (l *Log) PickNode(v core.VertexID, c core.Color) {
	l.logger.WithFields(logrus.Fields{"node": v, "color": c}).Debug("pick node")
}

func (l *Log) PickEdge(e core.EdgeID, c core.Color) {
	l.logger.WithFields(logrus.Fields{"edge": e, "color": c}).Debug("pick edge")
}

func (l *Log) RemoveHighlighting() {
	l.logger.Debug("remove highlighting")
}

func (l *Log) AddLegend(legend map[string]core.Color) {
	fields := make(logrus.Fields, len(legend))
	for k, v := range legend {
		fields[k] = v
	}
	l.logger.WithFields(fields).Debug("legend")
}

func (l *Log) Commit() {
	l.logger.Debug("frame")
}
