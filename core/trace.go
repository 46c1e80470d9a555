// Tracer: the optional progress-event sink matchers push to.
//
// The contract mirrors the hook style of the wider lvlath family
// (OnVisit/OnEnqueue callbacks): every event is advisory, a sink that
// ignores everything must never change a matcher's result.
package core

// Color names a highlight color for visualization sinks. Sinks are
// free to map these onto whatever palette they render with.
type Color string

// Highlight colors used by the shipped matchers.
const (
	ColorRed    Color = "red"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorYellow Color = "yellow"
	ColorGray   Color = "gray"
)

// Tracer receives progress events from a running matcher.
//
// Events within one matcher run arrive totally ordered and commit at
// step boundaries; Commit marks a displayable frame and must be
// idempotent. Implementations must not call back into the matcher or
// mutate the graph; the matcher's result may not depend on the sink.
type Tracer interface {
	// Step announces one unit of visible progress, named for display.
	Step(name string)

	// Message carries a human-readable progress note.
	Message(text string)

	// Data carries a named machine-readable payload (counters, duals).
	Data(name string, payload any)

	// CurrentNode marks v as the vertex being processed.
	CurrentNode(v VertexID)

	// CurrentEdge marks e as the edge being processed.
	CurrentEdge(e EdgeID)

	// PickNode highlights v in the given color.
	PickNode(v VertexID, c Color)

	// PickEdge highlights e in the given color.
	PickEdge(e EdgeID, c Color)

	// RemoveHighlighting clears all node and edge highlights.
	RemoveHighlighting()

	// AddLegend explains the colors currently in use.
	AddLegend(legend map[string]Color)

	// Commit marks the end of a displayable frame. Idempotent.
	Commit()
}

// NopTracer discards every event. It is the sink matchers fall back to
// when the caller passes nil.
type NopTracer struct{}

func (NopTracer) Step(string)                  {}
func (NopTracer) Message(string)               {}
func (NopTracer) Data(string, any)             {}
func (NopTracer) CurrentNode(VertexID)         {}
func (NopTracer) CurrentEdge(EdgeID)           {}
func (NopTracer) PickNode(VertexID, Color)     {}
func (NopTracer) PickEdge(EdgeID, Color)       {}
func (NopTracer) RemoveHighlighting()          {}
func (NopTracer) AddLegend(map[string]Color)   {}
func (NopTracer) Commit()                      {}

// EnsureTracer returns tr, or a NopTracer when tr is nil, so matcher
// code can emit events unconditionally.
func EnsureTracer(tr Tracer) Tracer {
	if tr == nil {
		return NopTracer{}
	}

	return tr
}
