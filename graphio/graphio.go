// YAML encoding and decoding of missions.
package graphio

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlmatch/core"
)

// fileEdge is the on-disk edge record.
type fileEdge struct {
	From   int   `yaml:"from"`
	To     int   `yaml:"to"`
	Weight int64 `yaml:"weight"`
}

// fileGraph is the on-disk mission document.
type fileGraph struct {
	Nodes int        `yaml:"nodes"`
	Edges []fileEdge `yaml:"edges"`
}

// Read decodes a mission from r.
func Read(r io.Reader) (*core.Graph, error) {
	var doc fileGraph
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphio: decode: %w", err)
	}

	g, err := core.NewGraph(doc.Nodes)
	if err != nil {
		return nil, err
	}
	for _, e := range doc.Edges {
		if _, err = g.AddEdge(core.VertexID(e.From), core.VertexID(e.To), e.Weight); err != nil {
			return nil, fmt.Errorf("graphio: edge %d—%d: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// Write encodes g to w in insertion order.
func Write(w io.Writer, g *core.Graph) error {
	doc := fileGraph{
		Nodes: g.VertexCount(),
		Edges: make([]fileEdge, 0, g.EdgeCount()),
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, fileEdge{From: int(e.From), To: int(e.To), Weight: e.Weight})
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return nil
}

// Load reads a mission file from disk.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Save writes a mission file to disk, truncating any existing file.
func Save(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", path, err)
	}
	defer f.Close()

	return Write(f, g)
}
