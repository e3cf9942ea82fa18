package ingest

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

// entryPointAttribute is the target language's program-entry marker, e.g.
// Swift's @main.
const entryPointAttribute = "main"

var (
	importRe = regexp.MustCompile(`^\s*(@testable\s+)?import\s+([A-Za-z_][A-Za-z0-9_.]*)`)
	attrRe   = regexp.MustCompile(`^\s*@([A-Za-z_][A-Za-z0-9_]*)\b`)
	typeRe   = regexp.MustCompile(`^\s*(?:(public|internal|private|fileprivate|open|package)\s+)?(?:final\s+)?(class|struct|enum|protocol|actor)\s+([A-Za-z_][A-Za-z0-9_]*)\s*(<[^>]*>)?\s*(?::\s*([^{]+))?\{`)
	funcRe   = regexp.MustCompile(`^\s*(?:(public|internal|private|fileprivate|open|package)\s+)?(static\s+)?(mutating\s+)?func\s+([A-Za-z_][A-Za-z0-9_]*)\s*(<[^>]*>)?\s*\(([^)]*)\)\s*(async\s*)?(throws\s*)?(?:->\s*([^{]+))?\{`)
	callRe   = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\s*\(`)

	controlKeywords = map[string]struct{}{
		"if": {}, "for": {}, "while": {}, "switch": {}, "catch": {},
		"guard": {}, "func": {}, "init": {}, "repeat": {}, "return": {},
	}
)

// Scan reads path and extracts the raw syntactic facts the IR builder
// needs. It is a hand-written scanner for the target language's
// declaration and call syntax, not a full parser: it recognizes brace-
// delimited type and function declarations, import lines and call
// expressions, and silently ignores everything else (expression grammar,
// operator precedence, string interpolation) — the same "recognize the
// shapes I care about" posture as the teacher's astx.ExtractSymbols.
func Scan(path string) (RawFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return RawFile{}, err
	}
	defer f.Close()

	raw := RawFile{Path: path}

	type frame struct {
		kind      string // "type" | "function"
		name      string
		startLine int
		depth     int
	}
	var stack []frame
	var pendingAttrs []string
	depth := 0

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		rawLine := sc.Text()
		line := stripCommentsAndStrings(rawLine)
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if m := importRe.FindStringSubmatch(line); m != nil {
			raw.Imports = append(raw.Imports, RawImport{
				ModuleName: dotJoin(m[2]),
				IsTestable: m[1] != "",
				Line:       lineNo,
			})
			continue
		}

		if m := attrRe.FindStringSubmatch(line); m != nil && !typeRe.MatchString(line) && !funcRe.MatchString(line) {
			name := m[1]
			pendingAttrs = append(pendingAttrs, name)
			if name == entryPointAttribute {
				raw.HasEntryPointAttribute = true
			}
			continue
		}

		var containingType string
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i].kind == "type" {
				containingType = stack[i].name
				break
			}
		}
		var containingFunc string
		if len(stack) > 0 && stack[len(stack)-1].kind == "function" {
			containingFunc = stack[len(stack)-1].name
		}

		switch {
		case typeRe.MatchString(line):
			m := typeRe.FindStringSubmatch(line)
			access := m[1]
			if access == "" {
				access = "internal"
			}
			var inherited []string
			if m[5] != "" {
				for _, part := range strings.Split(m[5], ",") {
					part = strings.TrimSpace(part)
					if part != "" {
						inherited = append(inherited, part)
					}
				}
			}
			attrs := pendingAttrs
			pendingAttrs = nil
			t := RawType{
				Name:              m[3],
				Kind:              m[2],
				InheritedTypes:    inherited,
				Accessibility:     access,
				Line:              lineNo,
				Attributes:        attrs,
				GenericParameters: genericNames(m[4]),
				ContainingType:    containingType,
			}
			raw.Types = append(raw.Types, t)
			depth++
			stack = append(stack, frame{kind: "type", name: m[3], startLine: lineNo, depth: depth})
			depth += extraBraceDelta(line, 1)

		case funcRe.MatchString(line):
			m := funcRe.FindStringSubmatch(line)
			access := m[1]
			if access == "" {
				access = "internal"
			}
			pendingAttrs = nil
			fn := RawFunction{
				Name:           m[4],
				Signature:      buildSignature(m),
				Parameters:     parseParams(m[6]),
				ReturnType:     strings.TrimSpace(m[9]),
				Accessibility:  access,
				IsStatic:       m[2] != "",
				IsMutating:     m[3] != "",
				IsAsync:        strings.TrimSpace(m[7]) != "",
				IsThrows:       strings.TrimSpace(m[8]) != "",
				Line:           lineNo,
				ContainingType: containingType,
			}
			raw.Functions = append(raw.Functions, fn)
			depth++
			stack = append(stack, frame{kind: "function", name: m[4], startLine: lineNo, depth: depth})
			depth += extraBraceDelta(line, 1)

		default:
			opens := strings.Count(line, "{")
			closes := strings.Count(line, "}")
			depth += opens

			if containingFunc != "" {
				for _, m := range callRe.FindAllStringSubmatch(line, -1) {
					name := m[1]
					if _, isKw := controlKeywords[name]; isKw {
						continue
					}
					raw.CallSites = append(raw.CallSites, RawCallSite{
						CalledName:         name,
						Line:               lineNo,
						ContainingFunction: containingFunc,
					})
				}
			} else {
				for _, m := range callRe.FindAllStringSubmatch(line, -1) {
					name := m[1]
					if _, isKw := controlKeywords[name]; isKw {
						continue
					}
					raw.CallSites = append(raw.CallSites, RawCallSite{
						CalledName: name,
						Line:       lineNo,
					})
				}
			}

			for i := 0; i < closes; i++ {
				depth--
				if len(stack) > 0 && stack[len(stack)-1].depth == depth+1 {
					top := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					if top.kind == "type" {
						setTypeEndLine(&raw, top.name, top.startLine, lineNo)
					} else {
						setFuncEndLine(&raw, top.name, top.startLine, lineNo)
					}
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return RawFile{}, err
	}
	return raw, nil
}

func extraBraceDelta(line string, subtractOpens int) int {
	opens := strings.Count(line, "{") - subtractOpens
	closes := strings.Count(line, "}")
	return opens - closes
}

func setTypeEndLine(raw *RawFile, name string, startLine, endLine int) {
	for i := range raw.Types {
		if raw.Types[i].Name == name && raw.Types[i].Line == startLine {
			raw.Types[i].EndLine = endLine
			return
		}
	}
}

func setFuncEndLine(raw *RawFile, name string, startLine, endLine int) {
	for i := range raw.Functions {
		if raw.Functions[i].Name == name && raw.Functions[i].Line == startLine {
			raw.Functions[i].EndLine = endLine
			return
		}
	}
}

func dotJoin(s string) string {
	return s
}

func genericNames(clause string) []string {
	clause = strings.TrimPrefix(clause, "<")
	clause = strings.TrimSuffix(clause, ">")
	if strings.TrimSpace(clause) == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(clause, ",") {
		part = strings.TrimSpace(part)
		if idx := strings.Index(part, ":"); idx >= 0 {
			part = strings.TrimSpace(part[:idx])
		}
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}

func parseParams(clause string) []RawParameter {
	clause = strings.TrimSpace(clause)
	if clause == "" {
		return nil
	}
	var params []RawParameter
	for _, part := range splitTopLevel(clause) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if idx := strings.Index(part, "="); idx >= 0 {
			part = strings.TrimSpace(part[:idx])
		}
		nameType := strings.SplitN(part, ":", 2)
		typ := ""
		if len(nameType) == 2 {
			typ = strings.TrimSpace(nameType[1])
		}
		fields := strings.Fields(strings.TrimSpace(nameType[0]))
		var label, name string
		switch len(fields) {
		case 0:
			continue
		case 1:
			label, name = fields[0], fields[0]
		default:
			label, name = fields[0], fields[1]
		}
		if label == "_" {
			label = ""
		}
		params = append(params, RawParameter{Label: label, Name: name, Type: typ})
	}
	return params
}

// splitTopLevel splits a parameter clause on commas that are not nested
// inside angle brackets or parentheses (generic types, closures).
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

func buildSignature(m []string) string {
	name := m[4]
	generics := m[5]
	params := m[6]
	isAsync := strings.TrimSpace(m[7]) != ""
	isThrows := strings.TrimSpace(m[8]) != ""
	ret := strings.TrimSpace(m[9])
	var b strings.Builder
	b.WriteString("func ")
	b.WriteString(name)
	b.WriteString(generics)
	b.WriteString("(")
	b.WriteString(params)
	b.WriteString(")")
	if isAsync {
		b.WriteString(" async")
	}
	if isThrows {
		b.WriteString(" throws")
	}
	if ret != "" {
		b.WriteString(" -> ")
		b.WriteString(ret)
	}
	return b.String()
}

var (
	lineCommentRe  = regexp.MustCompile(`//.*$`)
	stringLiteralRe = regexp.MustCompile(`"(?:[^"\\]|\\.)*"`)
)

// stripCommentsAndStrings blanks out line comments and string literal
// contents so brace/paren counting and identifier matching aren't confused
// by braces or keywords quoted in source text.
func stripCommentsAndStrings(line string) string {
	line = stringLiteralRe.ReplaceAllStringFunc(line, func(s string) string {
		return strings.Repeat(" ", len(s))
	})
	line = lineCommentRe.ReplaceAllStringFunc(line, func(s string) string {
		return strings.Repeat(" ", len(s))
	})
	return line
}
