// Buffer: an in-memory recording sink.
package trace

import "github.com/katalvlaran/lvlmatch/core"

// Kind discriminates recorded event variants.
type Kind string

// Event kinds, one per Tracer method.
const (
	KindStep        Kind = "step"
	KindMessage     Kind = "message"
	KindData        Kind = "data"
	KindCurrentNode Kind = "current_node"
	KindCurrentEdge Kind = "current_edge"
	KindPickNode    Kind = "pick_node"
	KindPickEdge    Kind = "pick_edge"
	KindClear       Kind = "remove_highlighting"
	KindLegend      Kind = "add_legend"
	KindCommit      Kind = "commit"
)

// Event is one recorded tracer call. Only the fields matching Kind
// are meaningful.
type Event struct {
	Kind    Kind
	Name    string
	Text    string
	Payload any
	Node    core.VertexID
	Edge    core.EdgeID
	Color   core.Color
	Legend  map[string]core.Color
}

// Buffer records every event in arrival order. Consecutive Commit
// calls collapse into one frame boundary, keeping Commit idempotent.
//
// A Buffer belongs to a single matcher run; it is not synchronized.
type Buffer struct {
	events []Event
}

// NewBuffer returns an empty recording sink.
func NewBuffer() *Buffer { return &Buffer{} }

// Events returns the recorded stream in order.
func (b *Buffer) Events() []Event { return b.events }

// Frames returns the number of committed display frames.
func (b *Buffer) Frames() int {
	n := 0
	for _, e := range b.events {
		if e.Kind == KindCommit {
			n++
		}
	}

	return n
}

// Messages returns the texts of all message events, in order.
func (b *Buffer) Messages() []string {
	var out []string
	for _, e := range b.events {
		if e.Kind == KindMessage {
			out = append(out, e.Text)
		}
	}

	return out
}

// Reset drops all recorded events.
func (b *Buffer) Reset() { b.events = b.events[:0] }

func (b *Buffer) Step(name string)    { b.events = append(b.events, Event{Kind: KindStep, Name: name}) }
func (b *Buffer) Message(text string) { b.events = append(b.events, Event{Kind: KindMessage, Text: text}) }

func (b *Buffer) Data(name string, payload any) {
	b.events = append(b.events, Event{Kind: KindData, Name: name, Payload: payload})
}

func (b *Buffer) CurrentNode(v core.VertexID) {
	b.events = append(b.events, Event{Kind: KindCurrentNode, Node: v})
}

func (b *Buffer) CurrentEdge(e core.EdgeID) {
	b.events = append(b.events, Event{Kind: KindCurrentEdge, Edge: e})
}

func (b *Buffer) PickNode(v core.VertexID, c core.Color) {
	b.events = append(b.events, Event{Kind: KindPickNode, Node: v, Color: c})
}

func (b *Buffer) PickEdge(e core.EdgeID, c core.Color) {
	b.events = append(b.events, Event{Kind: KindPickEdge, Edge: e, Color: c})
}

func (b *Buffer) RemoveHighlighting() {
	b.events = append(b.events, Event{Kind: KindClear})
}

func (b *Buffer) AddLegend(legend map[string]core.Color) {
	copied := make(map[string]core.Color, len(legend))
	for k, v := range legend {
		copied[k] = v
	}
	b.events = append(b.events, Event{Kind: KindLegend, Legend: copied})
}

// Commit records a frame boundary; a repeated Commit with no events in
// between is dropped.
func (b *Buffer) Commit() {
	if n := len(b.events); n > 0 && b.events[n-1].Kind == KindCommit {
		return
	}
	b.events = append(b.events, Event{Kind: KindCommit})
}
