package depgraph

import (
	"sort"

	"github.com/Chandram-Dutta/Hyena/pkg/model"
)

// FuncNode is one vertex of the call graph.
type FuncNode struct {
	Name     string
	FilePath string
}

// CallEdge is one call site. Caller is empty for module-level calls.
type CallEdge struct {
	Caller     string
	Callee     string
	IsInternal bool
}

// CallGraph is the call graph.
type CallGraph struct {
	Nodes []FuncNode
	Edges []CallEdge
}

// BuildCallGraph derives the call graph from ir.
func BuildCallGraph(ir *model.IR) *CallGraph {
	g := &CallGraph{}
	declared := ir.FunctionNames()

	for _, fn := range ir.FunctionDeclarations {
		g.Nodes = append(g.Nodes, FuncNode{Name: fn.Name, FilePath: fn.FilePath})
	}

	for _, cs := range ir.CallSites {
		_, isInternal := declared[cs.CalledName]
		g.Edges = append(g.Edges, CallEdge{
			Caller:     cs.ContainingFunction,
			Callee:     cs.CalledName,
			IsInternal: isInternal,
		})
	}

	return g
}

// HotFunction is one function with an internal in-degree at or above a
// requested threshold.
type HotFunction struct {
	Name  string
	Count int
}

// FindHotFunctions counts internal in-edges per callee name, keeps those
// with count >= threshold, and sorts descending by count (ties broken by
// name for determinism).
func (g *CallGraph) FindHotFunctions(threshold int) []HotFunction {
	counts := make(map[string]int)
	for _, e := range g.Edges {
		if e.IsInternal {
			counts[e.Callee]++
		}
	}

	var hot []HotFunction
	for name, count := range counts {
		if count >= threshold {
			hot = append(hot, HotFunction{Name: name, Count: count})
		}
	}
	sort.Slice(hot, func(i, j int) bool {
		if hot[i].Count != hot[j].Count {
			return hot[i].Count > hot[j].Count
		}
		return hot[i].Name < hot[j].Name
	})
	return hot
}

// FindUnusedFunctions returns nodes whose name never appears as the
// callee of an internal edge.
func (g *CallGraph) FindUnusedFunctions() []FuncNode {
	called := make(map[string]bool)
	for _, e := range g.Edges {
		if e.IsInternal {
			called[e.Callee] = true
		}
	}

	var unused []FuncNode
	for _, n := range g.Nodes {
		if !called[n.Name] {
			unused = append(unused, n)
		}
	}
	return unused
}

// InternalInDegree returns the count of internal in-edges for name
// without running a full threshold pass. Hot-function reporting does not
// use it; it goes through FindHotFunctions.
func (g *CallGraph) InternalInDegree(name string) int {
	count := 0
	for _, e := range g.Edges {
		if e.IsInternal && e.Callee == name {
			count++
		}
	}
	return count
}
