package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect_MergesInSortedOrderRegardlessOfCompletionOrder(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "Z.swift"), "struct Z {}\n")
	mustWrite(t, filepath.Join(root, "A.swift"), "struct A {}\n")

	result, err := Collect(root, Options{})
	require.NoError(t, err)
	require.Len(t, result.Files, 2)
	assert.Equal(t, filepath.Join(root, "A.swift"), result.Files[0].Path)
	assert.Equal(t, filepath.Join(root, "Z.swift"), result.Files[1].Path)
	assert.Empty(t, result.Warnings)
}

func TestCollect_UnreadableFileBecomesWarningNotFailure(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "Good.swift"), "struct Good {}\n")
	// A dangling symlink with the source extension is discovered by Walk
	// but fails to open; Scan should fail cleanly for it.
	require.NoError(t, os.Symlink(filepath.Join(root, "does-not-exist"), filepath.Join(root, "Bad.swift")))

	result, err := Collect(root, Options{})
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, filepath.Join(root, "Good.swift"), result.Files[0].Path)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, filepath.Join(root, "Bad.swift"), result.Warnings[0].Path)
}
