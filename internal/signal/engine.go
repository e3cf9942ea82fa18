package signal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Chandram-Dutta/Hyena/internal/depgraph"
	"github.com/Chandram-Dutta/Hyena/pkg/model"
)

// Detect runs the full signal catalog (spec.md §4.3) plus the
// module-collision addition SPEC_FULL.md documents, and returns a
// deterministic, sorted finding list: sort by severity, then name, then
// file.
func Detect(
	ir *model.IR,
	fg *depgraph.FileGraph,
	collisions []depgraph.ModuleCollision,
	ig *depgraph.InheritanceGraph,
	cg *depgraph.CallGraph,
	th Thresholds,
) []Finding {
	var findings []Finding

	findings = append(findings, detectDeadFiles(ir, fg)...)
	findings = append(findings, detectCircularDependencies(fg)...)
	findings = append(findings, detectBlastRadius(fg, th)...)
	findings = append(findings, detectCentralFiles(fg, th)...)
	findings = append(findings, detectGodFiles(fg, th)...)
	findings = append(findings, detectDeepChains(fg, th)...)
	findings = append(findings, detectDeepHierarchies(ig, th)...)
	findings = append(findings, detectWideProtocols(ig, th)...)
	findings = append(findings, detectHotFunctions(cg, th)...)
	findings = append(findings, detectUnusedFunctions(cg)...)
	findings = append(findings, detectHighInstability(ir, fg, th)...)
	findings = append(findings, detectLowAbstractness(ir, fg, th)...)
	findings = append(findings, detectDistanceFromMainSequence(ir, fg, th)...)
	findings = append(findings, detectModuleCollisions(collisions)...)

	SortFindings(findings)
	return findings
}

// SortFindings orders findings by severity, then name, then file — the
// same order Detect returns. Callers that append findings after the fact
// (e.g. internal/pipeline folding in parse-error warnings) call this to
// restore the invariant.
func SortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Severity.rank() != findings[j].Severity.rank() {
			return findings[i].Severity.rank() < findings[j].Severity.rank()
		}
		if findings[i].Name != findings[j].Name {
			return findings[i].Name < findings[j].Name
		}
		return findings[i].File < findings[j].File
	})
}

func detectDeadFiles(ir *model.IR, fg *depgraph.FileGraph) []Finding {
	var findings []Finding
	for _, f := range ir.Files {
		importedByOther := false
		for _, e := range fg.IncomingEdges(f.Path) {
			if e.From != f.Path {
				importedByOther = true
				break
			}
		}
		if importedByOther {
			continue
		}
		sev := SeverityInfo
		if len(fg.OutgoingEdges(f.Path)) > 0 {
			sev = SeverityWarning
		}
		findings = append(findings, Finding{
			Name:     "dead-file",
			Severity: sev,
			Message:  fmt.Sprintf("%s is not imported by any other file", f.Path),
			File:     f.Path,
		})
	}
	return findings
}

func detectCircularDependencies(fg *depgraph.FileGraph) []Finding {
	var findings []Finding
	for _, cycle := range fg.FindCycles() {
		findings = append(findings, Finding{
			Name:     "circular-dependency",
			Severity: SeverityError,
			Message:  strings.Join(cycle, " → "),
			File:     cycle[0],
		})
	}
	return findings
}

func detectBlastRadius(fg *depgraph.FileGraph, th Thresholds) []Finding {
	var findings []Finding
	for _, path := range fg.Paths() {
		radius := fg.BlastRadius(path)
		if radius < th.BlastRadiusReport {
			continue
		}
		sev := SeverityWarning
		if radius >= th.BlastRadiusError {
			sev = SeverityError
		}
		findings = append(findings, Finding{
			Name:     "blast-radius",
			Severity: sev,
			Message:  fmt.Sprintf("%d files transitively depend on %s", radius, path),
			File:     path,
		})
	}
	return findings
}

func detectCentralFiles(fg *depgraph.FileGraph, th Thresholds) []Finding {
	var findings []Finding
	for _, path := range fg.Paths() {
		in := fg.InDegree(path)
		if in < th.CentralFileReport {
			continue
		}
		sev := SeverityWarning
		if in >= th.CentralFileError {
			sev = SeverityError
		}
		findings = append(findings, Finding{
			Name:     "central-file",
			Severity: sev,
			Message:  fmt.Sprintf("%s has %d dependents", path, in),
			File:     path,
		})
	}
	return findings
}

func detectGodFiles(fg *depgraph.FileGraph, th Thresholds) []Finding {
	var findings []Finding
	for _, path := range fg.Paths() {
		out := fg.OutDegree(path)
		if out < th.GodFileReport {
			continue
		}
		sev := SeverityWarning
		if out >= th.GodFileError {
			sev = SeverityError
		}
		findings = append(findings, Finding{
			Name:     "god-file",
			Severity: sev,
			Message:  fmt.Sprintf("%s depends on %d files", path, out),
			File:     path,
		})
	}
	return findings
}

func detectDeepChains(fg *depgraph.FileGraph, th Thresholds) []Finding {
	var findings []Finding
	for _, path := range fg.Paths() {
		depth := fg.ForwardDepth(path)
		if depth < th.DeepChainReport {
			continue
		}
		sev := SeverityWarning
		if depth >= th.DeepChainError {
			sev = SeverityError
		}
		findings = append(findings, Finding{
			Name:     "deep-chain",
			Severity: sev,
			Message:  fmt.Sprintf("%s has dependency depth %d", path, depth),
			File:     path,
		})
	}
	return findings
}

func detectDeepHierarchies(ig *depgraph.InheritanceGraph, th Thresholds) []Finding {
	var findings []Finding
	for _, node := range ig.Nodes {
		depth := ig.Depth(node.Name)
		if depth < th.DeepHierarchyReport {
			continue
		}
		sev := SeverityWarning
		if depth >= th.DeepHierarchyError {
			sev = SeverityError
		}
		findings = append(findings, Finding{
			Name:     "deep-hierarchy",
			Severity: sev,
			Message:  fmt.Sprintf("%s has inheritance depth %d", node.Name, depth),
			File:     node.FilePath,
		})
	}
	return findings
}

func detectWideProtocols(ig *depgraph.InheritanceGraph, th Thresholds) []Finding {
	var findings []Finding
	for _, node := range ig.Nodes {
		if node.Kind != model.KindProtocol {
			continue
		}
		conformers := ig.Conformers(node.Name)
		if conformers < th.WideProtocolReport {
			continue
		}
		sev := SeverityWarning
		if conformers >= th.WideProtocolError {
			sev = SeverityError
		}
		findings = append(findings, Finding{
			Name:     "wide-protocol",
			Severity: sev,
			Message:  fmt.Sprintf("%s has %d conformers", node.Name, conformers),
			File:     node.FilePath,
		})
	}
	return findings
}

func detectHotFunctions(cg *depgraph.CallGraph, th Thresholds) []Finding {
	var findings []Finding
	fileByName := make(map[string]string)
	for _, n := range cg.Nodes {
		fileByName[n.Name] = n.FilePath
	}
	for _, hf := range cg.FindHotFunctions(th.HotFunctionReport) {
		sev := SeverityWarning
		if hf.Count >= th.HotFunctionError {
			sev = SeverityError
		}
		findings = append(findings, Finding{
			Name:     "hot-function",
			Severity: sev,
			Message:  fmt.Sprintf("%s is called %d times", hf.Name, hf.Count),
			File:     fileByName[hf.Name],
		})
	}
	return findings
}

func detectUnusedFunctions(cg *depgraph.CallGraph) []Finding {
	var findings []Finding
	for _, n := range cg.FindUnusedFunctions() {
		if isIgnoredUnusedFunction(n.Name) {
			continue
		}
		findings = append(findings, Finding{
			Name:     "unused-function",
			Severity: SeverityInfo,
			Message:  fmt.Sprintf("%s is never called", n.Name),
			File:     n.FilePath,
		})
	}
	return findings
}

func isIgnoredUnusedFunction(name string) bool {
	if _, ok := UnusedFunctionIgnoreNames[name]; ok {
		return true
	}
	for _, prefix := range UnusedFunctionIgnorePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func detectHighInstability(ir *model.IR, fg *depgraph.FileGraph, th Thresholds) []Finding {
	var findings []Finding
	for _, f := range ir.Files {
		in := fg.InDegree(f.Path)
		out := fg.OutDegree(f.Path)
		total := in + out
		if total < th.HighInstabilityMinDegree {
			continue
		}
		instability := float64(out) / float64(total)
		if instability < th.HighInstabilityRatio {
			continue
		}
		sev := SeverityWarning
		if f.IsEntryPoint {
			sev = SeverityInfo
		}
		findings = append(findings, Finding{
			Name:     "high-instability",
			Severity: sev,
			Message:  fmt.Sprintf("%s has instability %.2f", f.Path, instability),
			File:     f.Path,
		})
	}
	return findings
}

func detectLowAbstractness(ir *model.IR, fg *depgraph.FileGraph, th Thresholds) []Finding {
	var findings []Finding
	typesInFile, protocolsInFile := countTypesByFile(ir)
	for _, f := range ir.Files {
		total := typesInFile[f.Path]
		if total == 0 {
			continue
		}
		abstractness := float64(protocolsInFile[f.Path]) / float64(total)
		if abstractness != 0 {
			continue
		}
		if fg.InDegree(f.Path) < th.LowAbstractnessMinInDegree {
			continue
		}
		findings = append(findings, Finding{
			Name:     "low-abstractness",
			Severity: SeverityInfo,
			Message:  fmt.Sprintf("%s has no abstractions but %d dependents", f.Path, fg.InDegree(f.Path)),
			File:     f.Path,
		})
	}
	return findings
}

func detectDistanceFromMainSequence(ir *model.IR, fg *depgraph.FileGraph, th Thresholds) []Finding {
	var findings []Finding
	typesInFile, protocolsInFile := countTypesByFile(ir)
	for _, f := range ir.Files {
		total := typesInFile[f.Path]
		if total == 0 {
			continue
		}
		abstractness := float64(protocolsInFile[f.Path]) / float64(total)

		in := fg.InDegree(f.Path)
		out := fg.OutDegree(f.Path)
		degreeTotal := in + out
		var instability float64
		if degreeTotal > 0 {
			instability = float64(out) / float64(degreeTotal)
		}

		balance := abstractness + instability - 1
		distance := balance
		if distance < 0 {
			distance = -distance
		}
		if distance < th.DistanceFromMainSequence {
			continue
		}

		sev := SeverityWarning
		zone := "zone of pain"
		if balance > 0 {
			sev = SeverityInfo
			zone = "zone of uselessness"
		}
		findings = append(findings, Finding{
			Name:     "distance-from-main-sequence",
			Severity: sev,
			Message:  fmt.Sprintf("%s is in the %s (D=%.2f)", f.Path, zone, distance),
			File:     f.Path,
		})
	}
	return findings
}

func detectModuleCollisions(collisions []depgraph.ModuleCollision) []Finding {
	var findings []Finding
	for _, c := range collisions {
		findings = append(findings, Finding{
			Name:     "module-collision",
			Severity: SeverityInfo,
			Message:  fmt.Sprintf("module name %q is shared by %s", c.ModuleName, strings.Join(c.Paths, ", ")),
			File:     c.Paths[len(c.Paths)-1],
		})
	}
	return findings
}

// countTypesByFile returns, per file path, the total type count and the
// protocol-kind type count — the inputs to Martin abstractness (A).
func countTypesByFile(ir *model.IR) (total map[string]int, protocols map[string]int) {
	total = make(map[string]int)
	protocols = make(map[string]int)
	for _, t := range ir.TypeDeclarations {
		total[t.FilePath]++
		if t.Kind == model.KindProtocol {
			protocols[t.FilePath]++
		}
	}
	return total, protocols
}

// ParseErrorFinding builds the warning-class finding spec.md §7 mandates
// when a file fails to parse.
func ParseErrorFinding(filePath, message string) Finding {
	return Finding{
		Name:     "parse-error",
		Severity: SeverityWarning,
		Message:  message,
		File:     filePath,
	}
}
