// Package config loads optional threshold overrides from a YAML file
// alongside the project being analyzed, layering them on top of
// internal/signal's compiled-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Chandram-Dutta/Hyena/internal/signal"
)

// File is the on-disk shape of hyena.yaml. Every field is optional; an
// absent key leaves the corresponding default untouched, while an explicit
// value (zero included) replaces it.
type File struct {
	Thresholds ThresholdsFile `yaml:"thresholds"`
}

// ThresholdsFile mirrors signal.Thresholds with pointer fields so an
// absent key is distinguishable from an explicit zero.
type ThresholdsFile struct {
	BlastRadiusReport *int `yaml:"blastRadiusReport"`
	BlastRadiusError  *int `yaml:"blastRadiusError"`

	CentralFileReport *int `yaml:"centralFileReport"`
	CentralFileError  *int `yaml:"centralFileError"`

	GodFileReport *int `yaml:"godFileReport"`
	GodFileError  *int `yaml:"godFileError"`

	DeepChainReport *int `yaml:"deepChainReport"`
	DeepChainError  *int `yaml:"deepChainError"`

	DeepHierarchyReport *int `yaml:"deepHierarchyReport"`
	DeepHierarchyError  *int `yaml:"deepHierarchyError"`

	WideProtocolReport *int `yaml:"wideProtocolReport"`
	WideProtocolError  *int `yaml:"wideProtocolError"`

	HotFunctionReport *int `yaml:"hotFunctionReport"`
	HotFunctionError  *int `yaml:"hotFunctionError"`

	HighInstabilityRatio       *float64 `yaml:"highInstabilityRatio"`
	HighInstabilityMinDegree   *int     `yaml:"highInstabilityMinDegree"`
	LowAbstractnessMinInDegree *int     `yaml:"lowAbstractnessMinInDegree"`

	DistanceFromMainSequence *float64 `yaml:"distanceFromMainSequence"`
}

// Load reads path and returns the parsed File. A missing file returns the
// os.ReadFile error unchanged, so callers can test it with os.IsNotExist
// and fall back to defaults (LoadThresholds does this).
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// Apply layers the non-nil fields of f.Thresholds on top of base and
// returns the result, leaving base untouched.
func Apply(base signal.Thresholds, f File) signal.Thresholds {
	t := f.Thresholds
	out := base

	applyInt(&out.BlastRadiusReport, t.BlastRadiusReport)
	applyInt(&out.BlastRadiusError, t.BlastRadiusError)
	applyInt(&out.CentralFileReport, t.CentralFileReport)
	applyInt(&out.CentralFileError, t.CentralFileError)
	applyInt(&out.GodFileReport, t.GodFileReport)
	applyInt(&out.GodFileError, t.GodFileError)
	applyInt(&out.DeepChainReport, t.DeepChainReport)
	applyInt(&out.DeepChainError, t.DeepChainError)
	applyInt(&out.DeepHierarchyReport, t.DeepHierarchyReport)
	applyInt(&out.DeepHierarchyError, t.DeepHierarchyError)
	applyInt(&out.WideProtocolReport, t.WideProtocolReport)
	applyInt(&out.WideProtocolError, t.WideProtocolError)
	applyInt(&out.HotFunctionReport, t.HotFunctionReport)
	applyInt(&out.HotFunctionError, t.HotFunctionError)
	applyInt(&out.HighInstabilityMinDegree, t.HighInstabilityMinDegree)
	applyInt(&out.LowAbstractnessMinInDegree, t.LowAbstractnessMinInDegree)

	applyFloat(&out.HighInstabilityRatio, t.HighInstabilityRatio)
	applyFloat(&out.DistanceFromMainSequence, t.DistanceFromMainSequence)

	return out
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func applyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// LoadThresholds loads hyena.yaml from path (typically the scan root) and
// layers it over signal.Defaults(). A missing file is not an error.
func LoadThresholds(path string) (signal.Thresholds, error) {
	defaults := signal.Defaults()
	f, err := Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return defaults, err
	}
	return Apply(defaults, f), nil
}
