// Package result implements C4, the Result Aggregator: it bundles the IR,
// the three graphs and the signal findings into one immutable snapshot,
// alongside the summary counts the JSON export and the CLI summary line read
// rather than recomputing.
package result

import (
	"github.com/Chandram-Dutta/Hyena/internal/depgraph"
	"github.com/Chandram-Dutta/Hyena/internal/signal"
	"github.com/Chandram-Dutta/Hyena/pkg/model"
)

// Summary holds the counts printed by the CLI (unless --quiet is set) and
// embedded in the JSON export. The DOT and Mermaid exports do not carry it.
type Summary struct {
	FileCount     int `json:"fileCount"`
	TypeCount     int `json:"typeCount"`
	FunctionCount int `json:"functionCount"`
	CallSiteCount int `json:"callSiteCount"`

	ErrorCount   int `json:"errorCount"`
	WarningCount int `json:"warningCount"`
	InfoCount    int `json:"infoCount"`
}

// Result is the complete output of one analysis run.
type Result struct {
	IR          *model.IR                  `json:"ir"`
	FileGraph   *depgraph.FileGraph        `json:"-"`
	Inheritance *depgraph.InheritanceGraph `json:"-"`
	CallGraph   *depgraph.CallGraph        `json:"-"`

	Findings []signal.Finding `json:"findings"`
	Summary  Summary          `json:"summary"`
}

// New assembles a Result from its built parts and computes the summary.
func New(
	ir *model.IR,
	fg *depgraph.FileGraph,
	ig *depgraph.InheritanceGraph,
	cg *depgraph.CallGraph,
	findings []signal.Finding,
) *Result {
	r := &Result{
		IR:          ir,
		FileGraph:   fg,
		Inheritance: ig,
		CallGraph:   cg,
		Findings:    findings,
	}
	r.Summary = summarize(ir, findings)
	return r
}

func summarize(ir *model.IR, findings []signal.Finding) Summary {
	s := Summary{
		FileCount:     len(ir.Files),
		TypeCount:     len(ir.TypeDeclarations),
		FunctionCount: len(ir.FunctionDeclarations),
		CallSiteCount: len(ir.CallSites),
	}
	for _, f := range findings {
		switch f.Severity {
		case signal.SeverityError:
			s.ErrorCount++
		case signal.SeverityWarning:
			s.WarningCount++
		default:
			s.InfoCount++
		}
	}
	return s
}

// HasErrors reports whether any finding is error-severity. The CLI exit
// code does not depend on it: finding severity never affects the exit code.
func (r *Result) HasErrors() bool {
	return r.Summary.ErrorCount > 0
}
