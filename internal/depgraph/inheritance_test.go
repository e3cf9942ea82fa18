package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Chandram-Dutta/Hyena/pkg/model"
)

func TestInheritanceGraph_S3_DeepChain(t *testing.T) {
	ir := &model.IR{TypeDeclarations: []model.TypeDeclaration{
		{Name: "P", Kind: model.KindProtocol, FilePath: "P.swift", Line: 1},
		{Name: "C1", Kind: model.KindClass, FilePath: "C1.swift", Line: 1, InheritedTypes: []string{"P"}},
		{Name: "C2", Kind: model.KindClass, FilePath: "C2.swift", Line: 1, InheritedTypes: []string{"C1"}},
		{Name: "C3", Kind: model.KindClass, FilePath: "C3.swift", Line: 1, InheritedTypes: []string{"C2"}},
		{Name: "C4", Kind: model.KindClass, FilePath: "C4.swift", Line: 1, InheritedTypes: []string{"C3"}},
	}}
	g := BuildInheritanceGraph(ir)

	assert.Equal(t, 0, g.Depth("P"))
	assert.Equal(t, 1, g.Depth("C1"))
	assert.Equal(t, 2, g.Depth("C2"))
	assert.Equal(t, 3, g.Depth("C3"))
	assert.Equal(t, 4, g.Depth("C4"))
}

func TestInheritanceGraph_CyclicBackEdgeContributesZero(t *testing.T) {
	ir := &model.IR{TypeDeclarations: []model.TypeDeclaration{
		{Name: "X", Kind: model.KindClass, FilePath: "X.swift", Line: 1, InheritedTypes: []string{"Y"}},
		{Name: "Y", Kind: model.KindClass, FilePath: "Y.swift", Line: 1, InheritedTypes: []string{"X"}},
	}}
	g := BuildInheritanceGraph(ir)

	assert.NotPanics(t, func() { g.Depth("X") })
	assert.GreaterOrEqual(t, g.Depth("X"), 0)
}

func TestInheritanceGraph_ExternalSupertypeNotInternal(t *testing.T) {
	ir := &model.IR{TypeDeclarations: []model.TypeDeclaration{
		{Name: "MyView", Kind: model.KindStruct, FilePath: "MyView.swift", Line: 1, InheritedTypes: []string{"View"}},
	}}
	g := BuildInheritanceGraph(ir)
	assert.Len(t, g.Edges, 1)
	assert.False(t, g.Edges[0].IsInternal)
	assert.Equal(t, 0, g.Depth("MyView"))
}

func TestInheritanceGraph_Conformers(t *testing.T) {
	ir := &model.IR{TypeDeclarations: []model.TypeDeclaration{
		{Name: "Drawable", Kind: model.KindProtocol, FilePath: "D.swift", Line: 1},
		{Name: "Circle", Kind: model.KindStruct, FilePath: "C.swift", Line: 1, InheritedTypes: []string{"Drawable"}},
		{Name: "Square", Kind: model.KindStruct, FilePath: "S.swift", Line: 1, InheritedTypes: []string{"Drawable"}},
	}}
	g := BuildInheritanceGraph(ir)
	assert.Equal(t, 2, g.Conformers("Drawable"))
	assert.ElementsMatch(t, []string{"Circle", "Square"}, g.Subtypes("Drawable"))
}
