// Package toolchain runs the external format and typing gates over changed
// files. No formatting or typing logic lives here: each gate filters the
// changed files to the ones its tool understands and shells out, exactly as
// the pipeline scripts used to.
package toolchain

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/wahlandcase/attuned.cichecks/internal/models"
)

// Gate is a single toolchain check over changed files
type Gate interface {
	// Name is the tool name (e.g., "ruff")
	Name() string
	// FriendlyName is the human-readable gate description
	FriendlyName() string
	// Filter returns the subset of files this gate examines
	Filter(files []string) []string
	// HasTool reports whether the underlying tool is available
	HasTool(ctx context.Context) bool
	// Run executes the gate over the given changed files
	Run(ctx context.Context, files []string) models.GateResult
}

// RunAll executes each gate in order over the changed files and collects
// the results. A failing gate does not stop later gates.
func RunAll(ctx context.Context, gates []Gate, files []string, log zerolog.Logger) []models.GateResult {
	results := make([]models.GateResult, 0, len(gates))
	for _, gate := range gates {
		result := gate.Run(ctx, files)
		log.Debug().
			Str("gate", result.Gate).
			Int("files", len(result.Files)).
			Bool("passed", models.IsGatePassed(result.Status)).
			Msg("gate finished")
		results = append(results, result)
	}
	return results
}

// ExcludeFiles drops the configured excluded paths from the changed set
func ExcludeFiles(files, excluded []string) []string {
	if len(excluded) == 0 {
		return files
	}
	skip := make(map[string]bool, len(excluded))
	for _, e := range excluded {
		skip[e] = true
	}
	var kept []string
	for _, f := range files {
		if !skip[f] {
			kept = append(kept, f)
		}
	}
	return kept
}

// toolPath resolves a tool binary, honoring an environment override
func toolPath(envVar, fallback string) string {
	if path := os.Getenv(envVar); path != "" {
		return path
	}
	return fallback
}

// filterByExt keeps files whose extension is in exts (with leading dot)
func filterByExt(files []string, exts ...string) []string {
	var filtered []string
	for _, f := range files {
		ext := filepath.Ext(f)
		for _, want := range exts {
			if ext == want {
				filtered = append(filtered, f)
				break
			}
		}
	}
	return filtered
}
