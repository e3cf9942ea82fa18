package ingest

import (
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// ParseWarning is recorded for a file that failed to parse (spec §7's
// Parse error: skip the file, record a warning).
type ParseWarning struct {
	Path    string
	Message string
}

// CollectResult is the outcome of parsing an entire input set: the raw
// files that parsed cleanly, in sorted-path order for ID stability, plus
// one warning per file that failed to parse.
type CollectResult struct {
	Files    []RawFile
	Warnings []ParseWarning
}

// Collect walks root, then parses every discovered file across a bounded
// worker pool, following the same pattern codebase-memory-mcp's pipeline
// uses for parallel file hashing: a pre-sized results slice indexed by the
// file's position in the sorted path list, merged back in that order once
// every goroutine has finished — deterministic regardless of completion
// order, satisfying spec §5's ordering requirement.
func Collect(root string, opts Options) (CollectResult, error) {
	paths, err := Walk(root, opts)
	if err != nil {
		return CollectResult{}, fmt.Errorf("enumerate %s: %w", root, err)
	}

	type outcome struct {
		file RawFile
		err  error
	}
	results := make([]outcome, len(paths))

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			f, err := Scan(p)
			results[i] = outcome{file: f, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var out CollectResult
	for i, r := range results {
		if r.err != nil {
			out.Warnings = append(out.Warnings, ParseWarning{Path: paths[i], Message: r.err.Error()})
			continue
		}
		out.Files = append(out.Files, r.file)
	}
	sort.SliceStable(out.Files, func(i, j int) bool { return out.Files[i].Path < out.Files[j].Path })
	return out, nil
}
