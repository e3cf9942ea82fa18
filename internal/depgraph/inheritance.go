package depgraph

import (
	"github.com/Chandram-Dutta/Hyena/pkg/model"
)

// TypeNode is one vertex of the inheritance graph.
type TypeNode struct {
	Name     string
	Kind     model.DeclKind
	FilePath string
	Line     int
}

// TypeEdge is one inheritance relationship, from a type to a raw,
// unresolved inherited name. IsInternal is true when the name matches a
// declared type exactly.
type TypeEdge struct {
	From       string
	To         string
	IsInternal bool
}

// InheritanceGraph is the inheritance graph.
type InheritanceGraph struct {
	Nodes []TypeNode
	Edges []TypeEdge

	byName    map[string]TypeNode
	outByName map[string][]string // internal parent names only
}

// BuildInheritanceGraph derives the inheritance graph from ir.
func BuildInheritanceGraph(ir *model.IR) *InheritanceGraph {
	g := &InheritanceGraph{
		byName:    make(map[string]TypeNode),
		outByName: make(map[string][]string),
	}

	declared := ir.TypeNames()

	for _, t := range ir.TypeDeclarations {
		node := TypeNode{Name: t.Name, Kind: t.Kind, FilePath: t.FilePath, Line: t.Line}
		g.Nodes = append(g.Nodes, node)
		g.byName[t.Name] = node

		for _, parent := range t.InheritedTypes {
			_, isInternal := declared[parent]
			g.Edges = append(g.Edges, TypeEdge{From: t.Name, To: parent, IsInternal: isInternal})
			if isInternal {
				g.outByName[t.Name] = append(g.outByName[t.Name], parent)
			}
		}
	}

	return g
}

// Subtypes returns the names of nodes that list typeName as an out-edge
// target (i.e. types that inherit from typeName).
func (g *InheritanceGraph) Subtypes(typeName string) []string {
	var out []string
	for _, e := range g.Edges {
		if e.To == typeName {
			out = append(out, e.From)
		}
	}
	return out
}

// Supertypes returns the raw out-edge target names for typeName.
func (g *InheritanceGraph) Supertypes(typeName string) []string {
	var out []string
	for _, e := range g.Edges {
		if e.From == typeName {
			out = append(out, e.To)
		}
	}
	return out
}

// Depth returns 1 + max(depth(parent)) over internal parents, restricted
// to declared types; types with no internal parents have depth 0. The
// recursive walk treats a back-edge to a type already on the current
// visitation set as contributing depth 0, terminating on pathological
// cycles instead of recursing forever.
func (g *InheritanceGraph) Depth(typeName string) int {
	memo := make(map[string]int)
	onStack := make(map[string]bool)
	return g.depth(typeName, memo, onStack)
}

func (g *InheritanceGraph) depth(typeName string, memo map[string]int, onStack map[string]bool) int {
	if d, ok := memo[typeName]; ok {
		return d
	}
	if onStack[typeName] {
		return 0
	}
	onStack[typeName] = true
	defer func() { onStack[typeName] = false }()

	max := 0
	for _, parent := range g.outByName[typeName] {
		d := 1 + g.depth(parent, memo, onStack)
		if d > max {
			max = d
		}
	}
	memo[typeName] = max
	return max
}

// Conformers returns the count of types that inherit from (conform to)
// typeName, counting only internal edges.
func (g *InheritanceGraph) Conformers(typeName string) int {
	count := 0
	for _, e := range g.Edges {
		if e.To == typeName && e.IsInternal {
			count++
		}
	}
	return count
}

// Names returns every declared type name.
func (g *InheritanceGraph) Names() []string {
	names := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		names = append(names, n.Name)
	}
	return names
}
