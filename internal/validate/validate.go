// Package validate implements C5, the optional referential-integrity pass:
// it checks that every record the IR builder produced points at something
// that actually exists, surfacing violations as warnings rather than
// failing the run — a malformed cross-reference should not stop the
// signal engine from reporting on everything else.
package validate

import (
	"fmt"
	"sort"

	"github.com/Chandram-Dutta/Hyena/pkg/model"
)

// Issue is one referential-integrity violation.
type Issue struct {
	Kind    string
	Message string
}

const (
	KindDanglingFilePath   = "dangling-file-path"
	KindUnresolvedFunction = "unresolved-containing-function"
	KindDuplicateID        = "duplicate-id"
)

// Run checks ir for dangling filePath references (a type, function or call
// site naming a file not present in ir.Files), unresolved
// containingFunction references, and duplicate IDs. It never mutates ir.
func Run(ir *model.IR) []Issue {
	var issues []Issue

	files := make(map[string]struct{}, len(ir.Files))
	for _, f := range ir.Files {
		files[f.Path] = struct{}{}
	}

	functionIDs := make(map[string]struct{}, len(ir.FunctionDeclarations))
	for _, fn := range ir.FunctionDeclarations {
		functionIDs[fn.Name] = struct{}{}
	}

	seenIDs := make(map[string]int)

	for _, t := range ir.TypeDeclarations {
		if _, ok := files[t.FilePath]; !ok {
			issues = append(issues, Issue{
				Kind:    KindDanglingFilePath,
				Message: fmt.Sprintf("type %q references unknown file %q", t.Name, t.FilePath),
			})
		}
		seenIDs[t.ID]++
	}

	for _, fn := range ir.FunctionDeclarations {
		if _, ok := files[fn.FilePath]; !ok {
			issues = append(issues, Issue{
				Kind:    KindDanglingFilePath,
				Message: fmt.Sprintf("function %q references unknown file %q", fn.Name, fn.FilePath),
			})
		}
		seenIDs[fn.ID]++
	}

	for _, cs := range ir.CallSites {
		if _, ok := files[cs.FilePath]; !ok {
			issues = append(issues, Issue{
				Kind:    KindDanglingFilePath,
				Message: fmt.Sprintf("call site %q references unknown file %q", cs.CalledName, cs.FilePath),
			})
		}
		if cs.ContainingFunction != "" {
			if _, ok := functionIDs[cs.ContainingFunction]; !ok {
				issues = append(issues, Issue{
					Kind:    KindUnresolvedFunction,
					Message: fmt.Sprintf("call site %q claims containing function %q, which was never declared", cs.CalledName, cs.ContainingFunction),
				})
			}
		}
		seenIDs[cs.ID]++
	}

	var duplicateIDs []string
	for id, count := range seenIDs {
		if count > 1 {
			duplicateIDs = append(duplicateIDs, id)
		}
	}
	sort.Strings(duplicateIDs)
	for _, id := range duplicateIDs {
		issues = append(issues, Issue{
			Kind:    KindDuplicateID,
			Message: fmt.Sprintf("id %q is assigned to more than one record", id),
		})
	}

	return issues
}
