package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chandram-Dutta/Hyena/pkg/model"
)

func TestCallGraph_S4_HotFunction(t *testing.T) {
	ir := &model.IR{
		FunctionDeclarations: []model.FunctionDeclaration{{Name: "f", FilePath: "A.swift", Line: 1}},
	}
	for i := 0; i < 7; i++ {
		ir.CallSites = append(ir.CallSites, model.CallSite{CalledName: "f", FilePath: "A.swift", Line: i + 2})
	}
	g := BuildCallGraph(ir)

	hot := g.FindHotFunctions(5)
	require.Len(t, hot, 1)
	assert.Equal(t, "f", hot[0].Name)
	assert.Equal(t, 7, hot[0].Count)

	assert.Empty(t, g.FindHotFunctions(8))

	for i := 0; i < 4; i++ {
		ir.CallSites = append(ir.CallSites, model.CallSite{CalledName: "f", FilePath: "A.swift", Line: 100 + i})
	}
	g = BuildCallGraph(ir)
	hot = g.FindHotFunctions(11)
	require.Len(t, hot, 1)
	assert.Equal(t, 11, hot[0].Count)
}

func TestCallGraph_S6_UnusedFunction(t *testing.T) {
	ir := &model.IR{
		FunctionDeclarations: []model.FunctionDeclaration{
			{Name: "helper", FilePath: "A.swift", Line: 1},
			{Name: "used", FilePath: "A.swift", Line: 2},
		},
		CallSites: []model.CallSite{{CalledName: "used", FilePath: "A.swift", Line: 3}},
	}
	g := BuildCallGraph(ir)
	unused := g.FindUnusedFunctions()
	require.Len(t, unused, 1)
	assert.Equal(t, "helper", unused[0].Name)
}

func TestCallGraph_ExternalCalleeNotInternal(t *testing.T) {
	ir := &model.IR{
		CallSites: []model.CallSite{{CalledName: "print", FilePath: "A.swift", Line: 1}},
	}
	g := BuildCallGraph(ir)
	require.Len(t, g.Edges, 1)
	assert.False(t, g.Edges[0].IsInternal)
}
