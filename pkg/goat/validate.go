package goat

import (
	"fmt"

	"github.com/pepconf/goatgen/pkg/config"
)

// Severity classifies a validation check result
type Severity int

const (
	Pass Severity = iota
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Pass:
		return "PASS"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Check is a single validation result
type Check struct {
	Severity Severity
	Message  string
}

// Report is the ordered outcome of all compatibility checks. When a check
// auto-corrects a value, Corrected holds a copy of the configuration with the
// correction applied; the caller decides whether to adopt it.
type Report struct {
	Checks    []Check
	Corrected *config.Config
}

func (r *Report) add(s Severity, format string, args ...interface{}) {
	r.Checks = append(r.Checks, Check{Severity: s, Message: fmt.Sprintf(format, args...)})
}

// HasErrors reports whether any check produced an ERROR
func (r *Report) HasErrors() bool {
	for _, c := range r.Checks {
		if c.Severity == Error {
			return true
		}
	}
	return false
}

// Errors returns the ERROR entries
func (r *Report) Errors() []Check {
	var out []Check
	for _, c := range r.Checks {
		if c.Severity == Error {
			out = append(out, c)
		}
	}
	return out
}

// Warnings returns the WARN entries
func (r *Report) Warnings() []Check {
	var out []Check
	for _, c := range r.Checks {
		if c.Severity == Warn {
			out = append(out, c)
		}
	}
	return out
}

// RoundWorkers rounds a worker count to the nearest positive multiple of 4,
// with ties rounding up. GOAT-ENTROPY runs workers in groups of 4 replicas.
func RoundWorkers(n int) int {
	m := (n + 2) / 4 * 4
	if m < 4 {
		m = 4
	}
	return m
}

// Validate runs all cross-field compatibility checks against the
// configuration and returns the accumulated report. Every check runs
// regardless of earlier failures, so the report is complete in one pass.
// Validate performs no I/O and never modifies its input.
func Validate(cfg *config.Config) Report {
	var r Report

	// Solvation model vs computational method
	if cfg.Solvent.Enabled {
		switch {
		case IsXTBMethod(cfg.Method.Name) && !SolventModelAllowedForXTB(cfg.Solvent.Model):
			r.add(Error,
				"solvation model %s is incompatible with XTB method %s; use %s, %s, or %s",
				cfg.Solvent.Model, cfg.Method.Name,
				config.ModelALPB, config.ModelDDCOSMO, config.ModelCPCMX)
		default:
			r.add(Pass, "solvation model %s is compatible with method %s",
				cfg.Solvent.Model, cfg.Method.Name)
		}
	}

	// GOAT-ENTROPY runs 4 replicas per worker group, so the worker count
	// must divide evenly
	if cfg.Goat.Variant == config.VariantEntropy && cfg.Goat.NWorkers%4 != 0 {
		corrected := RoundWorkers(cfg.Goat.NWorkers)
		r.add(Warn,
			"%s requires NWORKERS to be a multiple of 4: %d will be corrected to %d",
			config.VariantEntropy, cfg.Goat.NWorkers, corrected)
		cc := *cfg
		cc.Goat.NWorkers = corrected
		r.Corrected = &cc
	}

	// Informational only: ORCA caps per-optimization cores at nprocs
	if cfg.Goat.MaxCoresOpt > cfg.Pal.NProcs {
		r.add(Warn,
			"MAXCORESOPT %d exceeds nprocs %d; the first optimization step will be capped at %d cores",
			cfg.Goat.MaxCoresOpt, cfg.Pal.NProcs, cfg.Pal.NProcs)
	}

	return r
}
