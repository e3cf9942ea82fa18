// Package ingest is the parser collaborator described in spec §6: it walks
// an input directory and yields, per file, the raw syntactic facts the IR
// builder lowers into model.IR. It is intentionally thin — recognizing
// declaration and call shapes, not a full grammar for the target language —
// the same way the teacher's astx.ExtractSymbols only understands the Go
// AST nodes it cares about and ignores the rest.
package ingest

// RawImport is one import clause as the scanner found it, unresolved.
type RawImport struct {
	ModuleName string
	IsTestable bool
	Line       int
}

// RawType is one type declaration as the scanner found it, with inherited
// type names preserved verbatim and unresolved.
type RawType struct {
	Name              string
	Kind              string // struct|class|enum|protocol|actor
	InheritedTypes    []string
	Accessibility     string
	Line              int
	EndLine           int
	Attributes        []string
	GenericParameters []string
	ContainingType    string // nearest enclosing type, if nested
}

// RawFunction is one function/method declaration as the scanner found it.
type RawFunction struct {
	Name           string
	Signature      string
	Parameters     []RawParameter
	ReturnType     string
	Accessibility  string
	IsStatic       bool
	IsAsync        bool
	IsThrows       bool
	IsMutating     bool
	Line           int
	EndLine        int
	ContainingType string
}

// RawParameter is one function parameter as the scanner found it.
type RawParameter struct {
	Label string
	Name  string
	Type  string
}

// RawCallSite is one call expression as the scanner found it.
type RawCallSite struct {
	CalledName         string
	Line               int
	ContainingFunction string
}

// RawFile is everything the parser collaborator yields for one file.
type RawFile struct {
	Path                  string
	Imports               []RawImport
	Types                 []RawType
	Functions             []RawFunction
	CallSites             []RawCallSite
	HasEntryPointAttribute bool
}
