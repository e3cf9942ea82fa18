// Package irbuild implements C1, the IR Builder: it lowers the parser
// collaborator's per-file raw facts into one immutable model.IR of files,
// type declarations, function declarations and call sites with stable,
// deterministic identifiers.
package irbuild

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Chandram-Dutta/Hyena/internal/ingest"
	"github.com/Chandram-Dutta/Hyena/pkg/model"
)

// Build lowers a sequence of parsed files into one IR value. Files are
// processed in the order given; callers (internal/ingest.Collect) are
// responsible for sorting that order by path so IDs are stable across
// runs.
func Build(files []ingest.RawFile) *model.IR {
	ir := &model.IR{}

	for _, rf := range files {
		moduleName := ModuleName(rf.Path)

		f := model.File{
			Path:       rf.Path,
			ModuleName: moduleName,
			IsEntryPoint: rf.HasEntryPointAttribute,
		}
		for _, imp := range rf.Imports {
			f.Imports = append(f.Imports, model.Import{
				ModuleName: imp.ModuleName,
				IsTestable: imp.IsTestable,
				Line:       imp.Line,
			})
		}
		if !f.IsEntryPoint {
			for _, t := range rf.Types {
				if hasEntryPointAttribute(t.Attributes) {
					f.IsEntryPoint = true
					break
				}
			}
		}
		ir.Files = append(ir.Files, f)

		typeOrdinal := 0
		for _, t := range rf.Types {
			id := makeID(rf.Path, "type", t.Name, typeOrdinal)
			typeOrdinal++
			ir.TypeDeclarations = append(ir.TypeDeclarations, model.TypeDeclaration{
				ID:                id,
				Name:              t.Name,
				Kind:              model.DeclKind(t.Kind),
				FilePath:          rf.Path,
				InheritedTypes:    t.InheritedTypes,
				Accessibility:     model.Accessibility(t.Accessibility),
				Line:              t.Line,
				EndLine:           maxInt(t.EndLine, t.Line),
				Attributes:        t.Attributes,
				GenericParameters: t.GenericParameters,
			})
		}

		funcOrdinal := 0
		for _, fn := range rf.Functions {
			id := makeID(rf.Path, "func", fn.Name, funcOrdinal)
			funcOrdinal++
			var params []model.Parameter
			for _, p := range fn.Parameters {
				params = append(params, model.Parameter{Label: p.Label, Name: p.Name, Type: p.Type})
			}
			var containingType string
			if fn.ContainingType != "" {
				containingType = fn.ContainingType
			}
			ir.FunctionDeclarations = append(ir.FunctionDeclarations, model.FunctionDeclaration{
				ID:             id,
				Name:           fn.Name,
				Signature:      fn.Signature,
				FilePath:       rf.Path,
				Parameters:     params,
				ReturnType:     fn.ReturnType,
				Accessibility:  model.Accessibility(fn.Accessibility),
				IsStatic:       fn.IsStatic,
				IsAsync:        fn.IsAsync,
				IsThrows:       fn.IsThrows,
				IsMutating:     fn.IsMutating,
				Line:           fn.Line,
				EndLine:        maxInt(fn.EndLine, fn.Line),
				ContainingType: containingType,
			})
		}

		callOrdinal := 0
		for _, cs := range rf.CallSites {
			id := makeID(rf.Path, "call", cs.CalledName, callOrdinal)
			callOrdinal++
			ir.CallSites = append(ir.CallSites, model.CallSite{
				ID:                 id,
				CalledName:         cs.CalledName,
				FilePath:           rf.Path,
				Line:               cs.Line,
				ContainingFunction: cs.ContainingFunction,
			})
		}
	}

	return ir
}

// ModuleName is the base file name with its extension removed — the
// heuristic spec §9 fixes as a contract surface, not to be improved on
// without a broader specification change.
func ModuleName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext)
}

// makeID mixes a kind tag into the file-path/name/ordinal triple so that a
// function and an unrelated call site of the same name can never collide —
// e.g. a recursive function is both its file's first function declaration
// and its own first call site.
func makeID(filePath, kind, name string, ordinal int) string {
	return fmt.Sprintf("%s:%s:%s:%d", filePath, kind, name, ordinal)
}

func hasEntryPointAttribute(attrs []string) bool {
	for _, a := range attrs {
		if a == "main" {
			return true
		}
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
