// Package export renders a result.Result in the formats §6 fixes: JSON
// (the full machine-readable payload), DOT (the file-dependency graph for
// Graphviz) and Mermaid (the same graph for inline documentation).
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/Chandram-Dutta/Hyena/internal/result"
)

// Format is one supported export format.
type Format string

const (
	FormatJSON    Format = "json"
	FormatDOT     Format = "dot"
	FormatMermaid Format = "mermaid"
)

// Write renders r in format to w.
func Write(w io.Writer, r *result.Result, format Format) error {
	switch format {
	case FormatJSON, "":
		return writeJSON(w, r)
	case FormatDOT:
		return writeDOT(w, r)
	case FormatMermaid:
		return writeMermaid(w, r)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

// writeJSON writes r as indented JSON with HTML-escaping disabled, so
// operators (e.g. "<" in a generic constraint) render unescaped.
func writeJSON(w io.Writer, r *result.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// writeDOT renders the file-dependency graph as a Graphviz digraph.
// Every file appears as a node; unresolved imports are omitted and repeated
// edges are drawn once — the DOT output is the architecture picture, not a
// dump of every finding.
func writeDOT(w io.Writer, r *result.Result) error {
	var sb strings.Builder
	sb.WriteString("digraph hyena {\n")
	sb.WriteString("    rankdir=LR;\n")

	for _, path := range r.FileGraph.Paths() {
		node, _ := r.FileGraph.Node(path)
		shape := "box"
		if node.IsEntryPoint {
			shape = "doubleoctagon"
		}
		sb.WriteString(fmt.Sprintf("    %s [label=%q shape=%s];\n", dotID(path), path, shape))
	}

	seen := make(map[string]bool)
	for _, e := range r.FileGraph.Edges {
		if e.ResolvedPath == "" {
			continue
		}
		key := e.From + "->" + e.ResolvedPath
		if seen[key] {
			continue
		}
		seen[key] = true
		sb.WriteString(fmt.Sprintf("    %s -> %s;\n", dotID(e.From), dotID(e.ResolvedPath)))
	}

	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// writeMermaid renders the same graph as a Mermaid flowchart, fenced in a
// code block so it can be pasted directly into markdown.
func writeMermaid(w io.Writer, r *result.Result) error {
	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("graph LR\n")

	for _, path := range r.FileGraph.Paths() {
		node, _ := r.FileGraph.Node(path)
		label := path
		if node.IsEntryPoint {
			label = path + " (entry)"
		}
		sb.WriteString(fmt.Sprintf("    %s[%q]\n", mermaidID(path), label))
	}

	type edgeKey struct{ from, to string }
	seen := make(map[edgeKey]bool)
	var edges []edgeKey
	for _, e := range r.FileGraph.Edges {
		if e.ResolvedPath == "" {
			continue
		}
		k := edgeKey{e.From, e.ResolvedPath}
		if seen[k] {
			continue
		}
		seen[k] = true
		edges = append(edges, k)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		return edges[i].to < edges[j].to
	})
	for _, e := range edges {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", mermaidID(e.from), mermaidID(e.to)))
	}

	sb.WriteString("```\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

var nonIdentifier = regexp.MustCompile(`[^a-zA-Z0-9_]`)

func dotID(path string) string {
	return "n" + nonIdentifier.ReplaceAllString(path, "_")
}

func mermaidID(path string) string {
	id := nonIdentifier.ReplaceAllString(strings.ToLower(path), "_")
	if id == "" {
		return "node"
	}
	if id[0] >= '0' && id[0] <= '9' {
		id = "n_" + id
	}
	return id
}
