package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chandram-Dutta/Hyena/internal/depgraph"
	"github.com/Chandram-Dutta/Hyena/pkg/model"
)

func findByName(findings []Finding, name string) []Finding {
	var out []Finding
	for _, f := range findings {
		if f.Name == name {
			out = append(out, f)
		}
	}
	return out
}

func TestDetect_S1_DeadFileInfoWhenNoOutgoingImports(t *testing.T) {
	ir := &model.IR{Files: []model.File{{Path: "Orphan.swift", ModuleName: "Orphan"}}}
	fg, collisions := depgraph.BuildFileGraph(ir)
	ig := depgraph.BuildInheritanceGraph(ir)
	cg := depgraph.BuildCallGraph(ir)

	findings := Detect(ir, fg, collisions, ig, cg, Defaults())
	dead := findByName(findings, "dead-file")
	require.Len(t, dead, 1)
	assert.Equal(t, SeverityInfo, dead[0].Severity)
}

func TestDetect_S1_DeadFileWarningWithOutgoingImports(t *testing.T) {
	ir := &model.IR{Files: []model.File{
		{Path: "Entry.swift", ModuleName: "Entry", Imports: []model.Import{{ModuleName: "Lib", Line: 1}}},
		{Path: "Lib.swift", ModuleName: "Lib"},
	}}
	fg, collisions := depgraph.BuildFileGraph(ir)
	ig := depgraph.BuildInheritanceGraph(ir)
	cg := depgraph.BuildCallGraph(ir)

	findings := Detect(ir, fg, collisions, ig, cg, Defaults())
	dead := findByName(findings, "dead-file")
	require.Len(t, dead, 1)
	assert.Equal(t, "Entry.swift", dead[0].File)
	assert.Equal(t, SeverityWarning, dead[0].Severity)
}

func TestDetect_S2_CircularDependencyMessageShowsPath(t *testing.T) {
	ir := &model.IR{Files: []model.File{
		{Path: "A.swift", ModuleName: "A", Imports: []model.Import{{ModuleName: "B", Line: 1}}},
		{Path: "B.swift", ModuleName: "B", Imports: []model.Import{{ModuleName: "A", Line: 1}}},
	}}
	fg, collisions := depgraph.BuildFileGraph(ir)
	ig := depgraph.BuildInheritanceGraph(ir)
	cg := depgraph.BuildCallGraph(ir)

	findings := Detect(ir, fg, collisions, ig, cg, Defaults())
	cycles := findByName(findings, "circular-dependency")
	require.Len(t, cycles, 1)
	assert.Equal(t, SeverityError, cycles[0].Severity)
	assert.Contains(t, cycles[0].Message, "→")
}

func TestDetect_S5_GodFileWarningThenError(t *testing.T) {
	buildIR := func(n int) *model.IR {
		ir := &model.IR{Files: []model.File{{Path: "God.swift", ModuleName: "God"}}}
		for i := 0; i < n; i++ {
			path := "Dep" + string(rune('A'+i)) + ".swift"
			mod := "Dep" + string(rune('A'+i))
			ir.Files[0].Imports = append(ir.Files[0].Imports, model.Import{ModuleName: mod, Line: i + 1})
			ir.Files = append(ir.Files, model.File{Path: path, ModuleName: mod})
		}
		return ir
	}

	warnIR := buildIR(10)
	fg, collisions := depgraph.BuildFileGraph(warnIR)
	ig := depgraph.BuildInheritanceGraph(warnIR)
	cg := depgraph.BuildCallGraph(warnIR)
	findings := Detect(warnIR, fg, collisions, ig, cg, Defaults())
	god := findByName(findings, "god-file")
	require.Len(t, god, 1)
	assert.Equal(t, SeverityWarning, god[0].Severity)

	errIR := buildIR(15)
	fg, collisions = depgraph.BuildFileGraph(errIR)
	ig = depgraph.BuildInheritanceGraph(errIR)
	cg = depgraph.BuildCallGraph(errIR)
	findings = Detect(errIR, fg, collisions, ig, cg, Defaults())
	god = findByName(findings, "god-file")
	require.Len(t, god, 1)
	assert.Equal(t, SeverityError, god[0].Severity)
}

func TestDetect_HighInstability(t *testing.T) {
	ir := &model.IR{Files: []model.File{
		{Path: "Unstable.swift", ModuleName: "Unstable", Imports: []model.Import{
			{ModuleName: "A", Line: 1}, {ModuleName: "B", Line: 2}, {ModuleName: "C", Line: 3}, {ModuleName: "D", Line: 4},
		}},
		{Path: "A.swift", ModuleName: "A"},
		{Path: "B.swift", ModuleName: "B"},
		{Path: "C.swift", ModuleName: "C"},
		{Path: "D.swift", ModuleName: "D"},
	}}
	fg, collisions := depgraph.BuildFileGraph(ir)
	ig := depgraph.BuildInheritanceGraph(ir)
	cg := depgraph.BuildCallGraph(ir)

	findings := Detect(ir, fg, collisions, ig, cg, Defaults())
	unstable := findByName(findings, "high-instability")
	require.Len(t, unstable, 1)
	assert.Equal(t, "Unstable.swift", unstable[0].File)
	assert.Equal(t, SeverityWarning, unstable[0].Severity)
}

func TestDetect_HighInstability_EntryPointDemotedToInfo(t *testing.T) {
	ir := &model.IR{Files: []model.File{
		{Path: "Main.swift", ModuleName: "Main", IsEntryPoint: true, Imports: []model.Import{
			{ModuleName: "A", Line: 1}, {ModuleName: "B", Line: 2}, {ModuleName: "C", Line: 3},
		}},
		{Path: "A.swift", ModuleName: "A"},
		{Path: "B.swift", ModuleName: "B"},
		{Path: "C.swift", ModuleName: "C"},
	}}
	fg, collisions := depgraph.BuildFileGraph(ir)
	ig := depgraph.BuildInheritanceGraph(ir)
	cg := depgraph.BuildCallGraph(ir)

	findings := Detect(ir, fg, collisions, ig, cg, Defaults())
	unstable := findByName(findings, "high-instability")
	require.Len(t, unstable, 1)
	assert.Equal(t, SeverityInfo, unstable[0].Severity)
}

func TestDetect_LowAbstractness(t *testing.T) {
	ir := &model.IR{
		Files: []model.File{
			{Path: "Util.swift", ModuleName: "Util"},
			{Path: "A.swift", ModuleName: "A", Imports: []model.Import{{ModuleName: "Util", Line: 1}}},
			{Path: "B.swift", ModuleName: "B", Imports: []model.Import{{ModuleName: "Util", Line: 1}}},
			{Path: "C.swift", ModuleName: "C", Imports: []model.Import{{ModuleName: "Util", Line: 1}}},
		},
		TypeDeclarations: []model.TypeDeclaration{
			{Name: "Util", Kind: model.KindStruct, FilePath: "Util.swift", Line: 1},
		},
	}
	fg, collisions := depgraph.BuildFileGraph(ir)
	ig := depgraph.BuildInheritanceGraph(ir)
	cg := depgraph.BuildCallGraph(ir)

	findings := Detect(ir, fg, collisions, ig, cg, Defaults())
	low := findByName(findings, "low-abstractness")
	require.Len(t, low, 1)
	assert.Equal(t, "Util.swift", low[0].File)
	assert.Equal(t, SeverityInfo, low[0].Severity)
}

func TestDetect_ModuleCollisionSurfacedAsInfo(t *testing.T) {
	ir := &model.IR{Files: []model.File{
		{Path: "a/Utils.swift", ModuleName: "Utils"},
		{Path: "b/Utils.swift", ModuleName: "Utils"},
	}}
	fg, collisions := depgraph.BuildFileGraph(ir)
	ig := depgraph.BuildInheritanceGraph(ir)
	cg := depgraph.BuildCallGraph(ir)

	findings := Detect(ir, fg, collisions, ig, cg, Defaults())
	collided := findByName(findings, "module-collision")
	require.Len(t, collided, 1)
	assert.Equal(t, SeverityInfo, collided[0].Severity)
}

func TestDetect_FindingsAreSortedBySeverityThenNameThenFile(t *testing.T) {
	ir := &model.IR{Files: []model.File{
		{Path: "A.swift", ModuleName: "A", Imports: []model.Import{{ModuleName: "B", Line: 1}}},
		{Path: "B.swift", ModuleName: "B", Imports: []model.Import{{ModuleName: "A", Line: 1}}},
	}}
	fg, collisions := depgraph.BuildFileGraph(ir)
	ig := depgraph.BuildInheritanceGraph(ir)
	cg := depgraph.BuildCallGraph(ir)

	findings := Detect(ir, fg, collisions, ig, cg, Defaults())
	for i := 1; i < len(findings); i++ {
		prev, cur := findings[i-1], findings[i]
		if prev.Severity.rank() != cur.Severity.rank() {
			assert.Less(t, prev.Severity.rank(), cur.Severity.rank())
			continue
		}
		if prev.Name != cur.Name {
			assert.LessOrEqual(t, prev.Name, cur.Name)
			continue
		}
		assert.LessOrEqual(t, prev.File, cur.File)
	}
}
