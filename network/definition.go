// SPDX-License-Identifier: MIT
package network

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cityroute/core"
)

// Sentinel errors for definition validation.
var (
	ErrNoCities         = errors.New("network: no cities defined")
	ErrDuplicateCity    = errors.New("network: duplicate city")
	ErrUnknownCity      = errors.New("network: road references unknown city")
	ErrNegativeDistance = errors.New("network: negative road distance")
	ErrBadSpeed         = errors.New("network: speed must be positive")
	ErrMalformedRoad    = errors.New("network: malformed road line")
)

// Road is one undirected road between two cities.
type Road struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Distance int64  `yaml:"distance"`
}

// Definition is the serializable form of a road network.
type Definition struct {
	Name   string   `yaml:"name,omitempty"`
	Speed  float64  `yaml:"speed,omitempty"`
	Cities []string `yaml:"cities"`
	Roads  []Road   `yaml:"roads"`
}

// Decode reads a YAML definition from r and validates it.
// Unknown fields are rejected.
func Decode(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoCities
		}
		return nil, fmt.Errorf("network: decode: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}

	return &def, nil
}

// LoadFile opens path and decodes it.
func LoadFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("network: open %s: %w", path, err)
	}
	defer f.Close()

	def, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return def, nil
}

// Encode writes def as YAML.
func (d *Definition) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("network: encode: %w", err)
	}

	return enc.Close()
}

// Validate checks the definition without building a graph.
func (d *Definition) Validate() error {
	if len(d.Cities) == 0 {
		return ErrNoCities
	}
	if d.Speed < 0 {
		return fmt.Errorf("%w: %v", ErrBadSpeed, d.Speed)
	}

	known := make(map[string]struct{}, len(d.Cities))
	for i, c := range d.Cities {
		if c == "" {
			return fmt.Errorf("network: city #%d: %w", i+1, core.ErrEmptyName)
		}
		if _, dup := known[c]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateCity, c)
		}
		known[c] = struct{}{}
	}

	var r Road
	for i := range d.Roads {
		r = d.Roads[i]
		if _, ok := known[r.From]; !ok {
			return fmt.Errorf("%w: road #%d from %q", ErrUnknownCity, i+1, r.From)
		}
		if _, ok := known[r.To]; !ok {
			return fmt.Errorf("%w: road #%d to %q", ErrUnknownCity, i+1, r.To)
		}
		if r.Distance < 0 {
			return fmt.Errorf("%w: road #%d %s–%s = %d", ErrNegativeDistance, i+1, r.From, r.To, r.Distance)
		}
	}

	return nil
}

// Build validates d and constructs the graph: cities first, in order, then roads.
func (d *Definition) Build(opts ...core.GraphOption) (*core.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGraph(opts...)
	for _, c := range d.Cities {
		if _, err := g.AddNode(c); err != nil {
			return nil, err
		}
	}
	for i, r := range d.Roads {
		if err := g.AddEdgeByName(r.From, r.To, r.Distance); err != nil {
			return nil, fmt.Errorf("network: road #%d: %w", i+1, err)
		}
	}

	return g, nil
}

// FromGraph captures g as a Definition (cities in ID order, roads in insertion order).
func FromGraph(g *core.Graph, name string, speed float64) *Definition {
	nodes := g.Nodes()
	def := &Definition{Name: name, Speed: speed, Cities: make([]string, len(nodes))}
	for i, n := range nodes {
		def.Cities[i] = n.Name
	}
	for _, e := range g.Edges() {
		def.Roads = append(def.Roads, Road{From: nodes[e.From].Name, To: nodes[e.To].Name, Distance: e.Weight})
	}

	return def
}
