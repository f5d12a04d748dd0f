package config

import (
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default configuration should be valid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:    "empty method",
			modify:  func(c *Config) { c.Method.Name = "" },
			wantErr: "method",
		},
		{
			name:    "unknown variant",
			modify:  func(c *Config) { c.Goat.Variant = "GOAT-TURBO" },
			wantErr: "variant",
		},
		{
			name: "unknown solvent model",
			modify: func(c *Config) {
				c.Solvent.Enabled = true
				c.Solvent.Model = "PCM"
			},
			wantErr: "solvation model",
		},
		{
			name: "missing solvent name",
			modify: func(c *Config) {
				c.Solvent.Enabled = true
				c.Solvent.Name = ""
			},
			wantErr: "solvent name",
		},
		{
			name:    "zero nprocs",
			modify:  func(c *Config) { c.Pal.NProcs = 0 },
			wantErr: "nprocs",
		},
		{
			name:    "negative nworkers",
			modify:  func(c *Config) { c.Goat.NWorkers = -1 },
			wantErr: "nworkers",
		},
		{
			name:    "zero max cores",
			modify:  func(c *Config) { c.Goat.MaxCoresOpt = 0 },
			wantErr: "max cores",
		},
		{
			name:    "zero multiplicity",
			modify:  func(c *Config) { c.System.Multiplicity = 0 },
			wantErr: "multiplicity",
		},
		{
			name: "uphill without method",
			modify: func(c *Config) {
				c.Goat.UseGFNUphill = true
				c.Goat.GFNUphillMethod = ""
			},
			wantErr: "uphill",
		},
		{
			name:    "zero nodes",
			modify:  func(c *Config) { c.Slurm.Nodes = 0 },
			wantErr: "node count",
		},
		{
			name:    "empty wall time",
			modify:  func(c *Config) { c.Slurm.WallTime = "" },
			wantErr: "wall time",
		},
		{
			name:    "empty memory",
			modify:  func(c *Config) { c.Slurm.Memory = "" },
			wantErr: "memory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got none")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in       string
		expected Variant
		wantErr  bool
	}{
		{in: "GOAT", expected: VariantGoat},
		{in: "goat", expected: VariantGoat},
		{in: "GOAT-ENTROPY", expected: VariantEntropy},
		{in: "goat_entropy", expected: VariantEntropy},
		{in: " goat-explore ", expected: VariantExplore},
		{in: "GOAT-DIVERSITY", expected: VariantDiversity},
		{in: "FROG", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseVariant(%q) expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVariant(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseVariant(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestVariantFileSuffix(t *testing.T) {
	tests := []struct {
		variant  Variant
		expected string
	}{
		{VariantGoat, "goat"},
		{VariantEntropy, "goat_entropy"},
		{VariantExplore, "goat_explore"},
		{VariantDiversity, "goat_diversity"},
	}
	for _, tt := range tests {
		if got := tt.variant.FileSuffix(); got != tt.expected {
			t.Errorf("%s.FileSuffix() = %q, expected %q", tt.variant, got, tt.expected)
		}
	}
}

func TestSolventKeyword(t *testing.T) {
	s := SolventConfig{Enabled: true, Model: ModelCPCM, Name: "Water"}
	if got := s.Keyword(); got != "CPCM(Water)" {
		t.Errorf("Keyword() = %q, expected %q", got, "CPCM(Water)")
	}

	s.Enabled = false
	if got := s.Keyword(); got != "" {
		t.Errorf("disabled solvation Keyword() = %q, expected empty", got)
	}

	s = SolventConfig{Enabled: true, Model: ModelALPB, Name: "DMSO"}
	if got := s.Keyword(); got != "ALPB(DMSO)" {
		t.Errorf("Keyword() = %q, expected %q", got, "ALPB(DMSO)")
	}
}

func TestMethodKeywords(t *testing.T) {
	m := MethodConfig{Name: "XTB2", OptLevel: "NORMALOPT"}
	if got := m.Keywords(); got != "NORMALOPT" {
		t.Errorf("Keywords() = %q, expected %q", got, "NORMALOPT")
	}

	m.ExtraKeywords = "GRID5 DEFGRID3"
	if got := m.Keywords(); got != "NORMALOPT GRID5 DEFGRID3" {
		t.Errorf("Keywords() = %q, expected %q", got, "NORMALOPT GRID5 DEFGRID3")
	}
}

func TestConfigString(t *testing.T) {
	cfg := DefaultConfig()
	s := cfg.String()
	for _, want := range []string{"GOAT", "XTB2", "NORMALOPT", "Solvent: none", "96:00:00", "400G"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q", want)
		}
	}

	cfg.Solvent.Enabled = true
	if !strings.Contains(cfg.String(), "CPCM(Water)") {
		t.Error("String() should show the solvent keyword when enabled")
	}
}
