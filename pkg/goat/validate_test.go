package goat

import (
	"strings"
	"testing"

	"github.com/pepconf/goatgen/pkg/config"
)

func TestRoundWorkers(t *testing.T) {
	tests := []struct {
		in       int
		expected int
	}{
		{in: 1, expected: 4},
		{in: 2, expected: 4},
		{in: 3, expected: 4},
		{in: 4, expected: 4},
		{in: 5, expected: 4},
		{in: 6, expected: 8},
		{in: 7, expected: 8},
		{in: 8, expected: 8},
		{in: 10, expected: 12},
		{in: 25, expected: 24},
		{in: 26, expected: 28},
		{in: 100, expected: 100},
	}

	for _, tt := range tests {
		if got := RoundWorkers(tt.in); got != tt.expected {
			t.Errorf("RoundWorkers(%d) = %d, expected %d", tt.in, got, tt.expected)
		}
	}
}

func TestValidateSolvation(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		model       string
		expectError bool
	}{
		{name: "xtb with cpcm", method: "XTB2", model: config.ModelCPCM, expectError: true},
		{name: "xtb with smd", method: "XTB2", model: config.ModelSMD, expectError: true},
		{name: "xtb with cosmo", method: "GFN2-xTB", model: config.ModelCOSMO, expectError: true},
		{name: "gfnff with cpcm", method: "GFN-FF", model: config.ModelCPCM, expectError: true},
		{name: "xtb with alpb", method: "XTB2", model: config.ModelALPB, expectError: false},
		{name: "xtb with ddcosmo", method: "XTB2", model: config.ModelDDCOSMO, expectError: false},
		{name: "xtb with cpcmx", method: "XTB2", model: config.ModelCPCMX, expectError: false},
		{name: "dft with cpcm", method: "R2SCAN-3C", model: config.ModelCPCM, expectError: false},
		{name: "dft with smd", method: "PBE", model: config.ModelSMD, expectError: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Method.Name = tt.method
			cfg.Solvent.Enabled = true
			cfg.Solvent.Model = tt.model
			cfg.Solvent.Name = "Water"

			report := Validate(cfg)
			if report.HasErrors() != tt.expectError {
				t.Errorf("Validate() HasErrors = %t, expected %t (checks: %v)",
					report.HasErrors(), tt.expectError, report.Checks)
			}
		})
	}
}

func TestValidateSolvationDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Method.Name = "XTB2"
	cfg.Solvent.Enabled = false
	cfg.Solvent.Model = config.ModelCPCM

	report := Validate(cfg)
	if report.HasErrors() {
		t.Errorf("disabled solvation should never error, got %v", report.Errors())
	}
	for _, c := range report.Checks {
		if strings.Contains(c.Message, "solvation") {
			t.Errorf("disabled solvation should produce no solvation check, got %q", c.Message)
		}
	}
}

func TestValidateEntropyWorkers(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Goat.Variant = config.VariantEntropy
	cfg.Goat.NWorkers = 25

	report := Validate(cfg)

	if len(report.Warnings()) == 0 {
		t.Fatal("expected a warning for nworkers=25 with GOAT-ENTROPY")
	}
	if report.Corrected == nil {
		t.Fatal("expected a corrected configuration")
	}
	if report.Corrected.Goat.NWorkers != 24 {
		t.Errorf("corrected nworkers = %d, expected 24", report.Corrected.Goat.NWorkers)
	}
	if cfg.Goat.NWorkers != 25 {
		t.Errorf("input configuration was modified: nworkers = %d", cfg.Goat.NWorkers)
	}
}

func TestValidateEntropyWorkersAlreadyMultiple(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Goat.Variant = config.VariantEntropy
	cfg.Goat.NWorkers = 24
	cfg.Goat.MaxCoresOpt = 8 // below nprocs, no oversubscription warning

	report := Validate(cfg)
	if report.Corrected != nil {
		t.Error("nworkers=24 needs no correction")
	}
	if len(report.Warnings()) != 0 {
		t.Errorf("expected no warnings, got %v", report.Warnings())
	}
}

func TestValidateWorkersNonEntropy(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Goat.Variant = config.VariantGoat
	cfg.Goat.NWorkers = 25

	report := Validate(cfg)
	if report.Corrected != nil {
		t.Error("worker rounding applies only to GOAT-ENTROPY")
	}
}

func TestValidateOversubscription(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Goat.MaxCoresOpt = 64
	cfg.Pal.NProcs = 32

	report := Validate(cfg)
	if report.HasErrors() {
		t.Errorf("oversubscription is informational, got errors %v", report.Errors())
	}
	if len(report.Warnings()) == 0 {
		t.Error("expected a warning for maxcoresopt > nprocs")
	}
}

func TestValidateAccumulatesAllChecks(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Method.Name = "XTB2"
	cfg.Solvent.Enabled = true
	cfg.Solvent.Model = config.ModelSMD
	cfg.Solvent.Name = "Water"
	cfg.Goat.Variant = config.VariantEntropy
	cfg.Goat.NWorkers = 25
	cfg.Goat.MaxCoresOpt = 300
	cfg.Pal.NProcs = 200

	report := Validate(cfg)

	// one error, two warnings, no short-circuit
	if len(report.Errors()) != 1 {
		t.Errorf("expected 1 error, got %d: %v", len(report.Errors()), report.Errors())
	}
	if len(report.Warnings()) != 2 {
		t.Errorf("expected 2 warnings, got %d: %v", len(report.Warnings()), report.Warnings())
	}
	if report.Corrected == nil {
		t.Error("expected worker correction alongside the error")
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{Pass, "PASS"},
		{Warn, "WARN"},
		{Error, "ERROR"},
		{Severity(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.expected {
			t.Errorf("Severity(%d).String() = %q, expected %q", tt.severity, got, tt.expected)
		}
	}
}
