package builder

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphkit/core"
)

// EdgeSpec describes one undirected weighted edge of a Network.
type EdgeSpec struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// Network is a declarative graph description: a node list and an edge list.
// It is the document shape of YAML network files.
type Network struct {
	Title string     `yaml:"title,omitempty"`
	Nodes []string   `yaml:"nodes"`
	Edges []EdgeSpec `yaml:"edges"`
}

// Sample returns the built-in road network of seven Ukrainian cities.
// Weights are road distances in kilometres.
func Sample() Network {
	return Network{
		Title: "Ukraine roads",
		Nodes: []string{"Kharkiv", "Poltava", "Dnipro", "Uman", "Kyiv", "Odessa", "Lviv"},
		Edges: []EdgeSpec{
			{From: "Kharkiv", To: "Poltava", Weight: 143},
			{From: "Kharkiv", To: "Dnipro", Weight: 221},
			{From: "Poltava", To: "Dnipro", Weight: 183},
			{From: "Poltava", To: "Kyiv", Weight: 343},
			{From: "Poltava", To: "Uman", Weight: 420},
			{From: "Dnipro", To: "Uman", Weight: 417},
			{From: "Dnipro", To: "Odessa", Weight: 455},
			{From: "Uman", To: "Odessa", Weight: 269},
			{From: "Uman", To: "Kyiv", Weight: 211},
			{From: "Uman", To: "Lviv", Weight: 530},
			{From: "Kyiv", To: "Lviv", Weight: 540},
		},
	}
}

// LoadNetwork decodes a single YAML network document from r.
// Unknown fields are rejected. Decoding failures wrap ErrDecode; an empty
// document or an empty node list wraps ErrEmptyNetwork.
func LoadNetwork(r io.Reader) (Network, error) {
	var n Network
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&n); err != nil {
		if errors.Is(err, io.EOF) {
			return Network{}, fmt.Errorf("LoadNetwork: empty document: %w", ErrEmptyNetwork)
		}
		return Network{}, fmt.Errorf("LoadNetwork: %w: %w", ErrDecode, err)
	}
	if len(n.Nodes) == 0 {
		return Network{}, fmt.Errorf("LoadNetwork(%q): %w", n.Title, ErrEmptyNetwork)
	}

	return n, nil
}

// LoadNetworkFile opens path and decodes it with LoadNetwork.
func LoadNetworkFile(path string) (Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return Network{}, fmt.Errorf("LoadNetworkFile: %w", err)
	}
	defer f.Close()

	n, err := LoadNetwork(f)
	if err != nil {
		return Network{}, fmt.Errorf("LoadNetworkFile(%s): %w", path, err)
	}

	return n, nil
}

// NetworkOf snapshots g into a Network: nodes in ascending ID order, edges
// in insertion order.
func NetworkOf(g *core.Graph, title string) Network {
	n := Network{Title: title, Nodes: g.Vertices()}
	edges := g.Edges()
	n.Edges = make([]EdgeSpec, 0, len(edges))
	for _, e := range edges {
		n.Edges = append(n.Edges, EdgeSpec{From: e.From, To: e.To, Weight: e.Weight})
	}

	return n
}

// WriteYAML encodes n as a YAML document that LoadNetwork accepts.
func (n Network) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return enc.Close()
}
