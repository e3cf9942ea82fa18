// Package depgraph implements C2, the Graph Builder: it derives the file-
// dependency graph, the inheritance graph and the call graph from a single
// model.IR, applying the resolution rules spec.md §4.2 fixes. All three
// graphs are read-only once built.
package depgraph

import (
	"sort"

	"github.com/Chandram-Dutta/Hyena/pkg/model"
)

// FileNode is one vertex of the file-dependency graph.
type FileNode struct {
	Path         string
	ModuleName   string
	IsEntryPoint bool
}

// FileEdge is one import relationship. ResolvedPath is empty when the
// import does not match any file in the input set.
type FileEdge struct {
	From         string
	To           string
	ResolvedPath string
}

// ModuleCollision records two or more input files sharing a base file name
// — the accident spec.md §9 leaves as an open question. Hyena resolves it
// by keeping the "last wins, sorted by path" behavior and additionally
// reporting the collision (see internal/signal's module-collision finding).
type ModuleCollision struct {
	ModuleName string
	Paths      []string
}

// FileGraph is the file-dependency graph.
type FileGraph struct {
	Nodes []FileNode
	Edges []FileEdge

	moduleToFile map[string]string
	byPath       map[string]FileNode
	adjacency    map[string][]string // path -> resolved target paths (internal only)
}

// BuildFileGraph derives the file-dependency graph from ir. Files must
// already be in a stable order (internal/ingest.Collect sorts by path);
// when two files share a module name the later one in that order wins, and
// the collision is returned alongside the graph.
func BuildFileGraph(ir *model.IR) (*FileGraph, []ModuleCollision) {
	g := &FileGraph{
		moduleToFile: make(map[string]string),
		byPath:       make(map[string]FileNode),
		adjacency:    make(map[string][]string),
	}

	collisionPaths := make(map[string][]string)
	for _, f := range ir.Files {
		g.Nodes = append(g.Nodes, FileNode{Path: f.Path, ModuleName: f.ModuleName, IsEntryPoint: f.IsEntryPoint})
		g.byPath[f.Path] = FileNode{Path: f.Path, ModuleName: f.ModuleName, IsEntryPoint: f.IsEntryPoint}
		if _, exists := g.moduleToFile[f.ModuleName]; exists {
			collisionPaths[f.ModuleName] = append(collisionPaths[f.ModuleName], f.Path)
		} else {
			collisionPaths[f.ModuleName] = []string{f.Path}
		}
		g.moduleToFile[f.ModuleName] = f.Path // last wins
	}

	var collisions []ModuleCollision
	for name, paths := range collisionPaths {
		if len(paths) > 1 {
			collisions = append(collisions, ModuleCollision{ModuleName: name, Paths: paths})
		}
	}
	sort.Slice(collisions, func(i, j int) bool { return collisions[i].ModuleName < collisions[j].ModuleName })

	for _, f := range ir.Files {
		for _, imp := range f.Imports {
			resolved := g.moduleToFile[imp.ModuleName]
			if _, ok := g.byPath[resolved]; !ok {
				resolved = ""
			}
			g.Edges = append(g.Edges, FileEdge{From: f.Path, To: imp.ModuleName, ResolvedPath: resolved})
			if resolved != "" {
				g.adjacency[f.Path] = append(g.adjacency[f.Path], resolved)
			}
		}
	}

	return g, collisions
}

// IncomingEdges returns edges whose target module name equals the given
// file's module name.
func (g *FileGraph) IncomingEdges(path string) []FileEdge {
	node, ok := g.byPath[path]
	if !ok {
		return nil
	}
	var out []FileEdge
	for _, e := range g.Edges {
		if e.To == node.ModuleName {
			out = append(out, e)
		}
	}
	return out
}

// OutgoingEdges returns edges whose source path equals path.
func (g *FileGraph) OutgoingEdges(path string) []FileEdge {
	var out []FileEdge
	for _, e := range g.Edges {
		if e.From == path {
			out = append(out, e)
		}
	}
	return out
}

// InDegree and OutDegree count resolved (internal) edges only, matching
// the central-file/god-file signals' intent of measuring architectural
// coupling rather than all textual import lines.
func (g *FileGraph) InDegree(path string) int {
	count := 0
	for _, e := range g.Edges {
		if e.ResolvedPath == path {
			count++
		}
	}
	return count
}

func (g *FileGraph) OutDegree(path string) int {
	count := 0
	for _, e := range g.Edges {
		if e.From == path && e.ResolvedPath != "" {
			count++
		}
	}
	return count
}

// Paths returns every file path in the graph, sorted, for deterministic
// iteration by callers.
func (g *FileGraph) Paths() []string {
	paths := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		paths = append(paths, n.Path)
	}
	sort.Strings(paths)
	return paths
}

// Node returns the node for path.
func (g *FileGraph) Node(path string) (FileNode, bool) {
	n, ok := g.byPath[path]
	return n, ok
}

// FindCycles runs depth-first search over the resolved-edge adjacency,
// keyed by file path, with a visited set and a recursion-stack set. When
// an edge's resolved target is already on the recursion stack, the cycle
// is the slice of the current DFS path from the first occurrence of the
// target through the end, with the target appended once more to close it.
// Unresolved imports are leaves and contribute no cycles.
func (g *FileGraph) FindCycles() [][]string {
	visited := make(map[string]bool)
	onStack := make(map[string]bool)
	var path []string
	var cycles [][]string

	var visit func(node string)
	visit = func(node string) {
		visited[node] = true
		onStack[node] = true
		path = append(path, node)

		for _, next := range g.adjacency[node] {
			if onStack[next] {
				idx := indexOf(path, next)
				if idx >= 0 {
					cycle := append([]string{}, path[idx:]...)
					cycle = append(cycle, next)
					cycles = append(cycles, cycle)
				}
				continue
			}
			if !visited[next] {
				visit(next)
			}
		}

		path = path[:len(path)-1]
		onStack[node] = false
	}

	for _, p := range g.Paths() {
		if !visited[p] {
			visit(p)
		}
	}
	return cycles
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// ForwardDepth computes the memoized forward dependency depth of path:
// 1 + max(depth(resolved import)) over resolved imports, 0 with none. A
// back-edge to a node already on the current recursion set contributes
// depth 0, matching the inheritance graph's cycle-safe depth rule.
func (g *FileGraph) ForwardDepth(path string) int {
	memo := make(map[string]int)
	onStack := make(map[string]bool)
	return g.forwardDepth(path, memo, onStack)
}

func (g *FileGraph) forwardDepth(path string, memo map[string]int, onStack map[string]bool) int {
	if d, ok := memo[path]; ok {
		return d
	}
	if onStack[path] {
		return 0
	}
	onStack[path] = true
	defer func() { onStack[path] = false }()

	max := 0
	for _, next := range g.adjacency[path] {
		d := 1 + g.forwardDepth(next, memo, onStack)
		if d > max {
			max = d
		}
	}
	memo[path] = max
	return max
}

// BlastRadius returns the number of files that transitively depend on
// path, computed by BFS over the reverse (resolved) edge set.
func (g *FileGraph) BlastRadius(path string) int {
	reverse := make(map[string][]string)
	for _, e := range g.Edges {
		if e.ResolvedPath != "" {
			reverse[e.ResolvedPath] = append(reverse[e.ResolvedPath], e.From)
		}
	}

	visited := map[string]bool{path: true}
	queue := []string{path}
	count := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, dependent := range reverse[cur] {
			if !visited[dependent] {
				visited[dependent] = true
				count++
				queue = append(queue, dependent)
			}
		}
	}
	return count
}
