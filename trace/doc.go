// Package trace ships the bundled core.Tracer implementations.
//
// Buffer records the full event stream in memory so a UI can replay
// it frame by frame, or a test can assert on it. Log renders events
// through a structured logrus logger for terminal use. Both sinks are
// passive: they never influence the matcher that feeds them.
package trace
