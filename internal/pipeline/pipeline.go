// Package pipeline orchestrates the full analysis: ingest, IR build,
// graph build, signal detection, validation and result aggregation. It is
// the only package that logs — the core components stay silent and
// return errors and findings.
package pipeline

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Chandram-Dutta/Hyena/internal/depgraph"
	"github.com/Chandram-Dutta/Hyena/internal/ingest"
	"github.com/Chandram-Dutta/Hyena/internal/irbuild"
	"github.com/Chandram-Dutta/Hyena/internal/result"
	"github.com/Chandram-Dutta/Hyena/internal/signal"
	"github.com/Chandram-Dutta/Hyena/internal/validate"
)

// Options configures one run.
type Options struct {
	Root          string
	IngestOptions ingest.Options
	Thresholds    signal.Thresholds
	Validate      bool
}

// Run executes the full pipeline and returns the aggregated result. It
// checks ctx for cancellation between stages: after parsing and after graph
// construction. internal/ingest.Collect takes no context, so a cancellation
// during parsing is only observed once every file has been scanned.
func Run(ctx context.Context, log *logrus.Logger, opts Options) (*result.Result, error) {
	log.Debugf("walking %s", opts.Root)
	collected, err := ingest.Collect(opts.Root, opts.IngestOptions)
	if err != nil {
		return nil, fmt.Errorf("collecting files: %w", err)
	}
	for _, w := range collected.Warnings {
		log.Warnf("parse-error: %s: %s", w.Path, w.Message)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debugf("building IR from %d files", len(collected.Files))
	ir := irbuild.Build(collected.Files)

	log.Debug("building dependency, inheritance and call graphs")
	fileGraph, collisions := depgraph.BuildFileGraph(ir)
	inheritanceGraph := depgraph.BuildInheritanceGraph(ir)
	callGraph := depgraph.BuildCallGraph(ir)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug("running signal detectors")
	findings := signal.Detect(ir, fileGraph, collisions, inheritanceGraph, callGraph, opts.Thresholds)
	for _, w := range collected.Warnings {
		findings = append(findings, signal.ParseErrorFinding(w.Path, w.Message))
	}
	signal.SortFindings(findings)

	if opts.Validate {
		issues := validate.Run(ir)
		for _, issue := range issues {
			log.Warnf("%s: %s", issue.Kind, issue.Message)
		}
	}

	r := result.New(ir, fileGraph, inheritanceGraph, callGraph, findings)
	log.Debugf("scan complete: %d errors, %d warnings, %d info",
		r.Summary.ErrorCount, r.Summary.WarningCount, r.Summary.InfoCount)
	return r, nil
}
