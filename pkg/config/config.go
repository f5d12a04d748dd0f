package config

import (
	"fmt"
	"strings"
)

// Variant identifies one of the GOAT operating modes
type Variant string

const (
	VariantGoat      Variant = "GOAT"
	VariantEntropy   Variant = "GOAT-ENTROPY"
	VariantExplore   Variant = "GOAT-EXPLORE"
	VariantDiversity Variant = "GOAT-DIVERSITY"
)

// Variants lists all supported GOAT variants in menu order
var Variants = []Variant{VariantGoat, VariantEntropy, VariantExplore, VariantDiversity}

// ParseVariant parses a variant name, accepting any case and either
// "GOAT-ENTROPY" or "GOAT_ENTROPY" spelling
func ParseVariant(s string) (Variant, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	for _, v := range Variants {
		if string(v) == normalized {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown GOAT variant: %s", s)
}

// Valid reports whether v is one of the supported variants
func (v Variant) Valid() bool {
	for _, known := range Variants {
		if v == known {
			return true
		}
	}
	return false
}

// FileSuffix returns the variant name as used in generated file names:
// lowercased with hyphens replaced by underscores, e.g. "goat_entropy"
func (v Variant) FileSuffix() string {
	return strings.ReplaceAll(strings.ToLower(string(v)), "-", "_")
}

// Solvation model names recognized in ORCA keywords
const (
	ModelCPCM    = "CPCM"
	ModelSMD     = "SMD"
	ModelCOSMO   = "COSMO"
	ModelALPB    = "ALPB"
	ModelDDCOSMO = "ddCOSMO"
	ModelCPCMX   = "CPCMX"
)

// SolventModels lists all recognized solvation models
var SolventModels = []string{ModelCPCM, ModelSMD, ModelCOSMO, ModelALPB, ModelDDCOSMO, ModelCPCMX}

// Config holds the complete generation configuration
type Config struct {
	// Computational method settings
	Method MethodConfig `yaml:"method"`

	// Implicit solvation settings
	Solvent SolventConfig `yaml:"solvent"`

	// GOAT algorithm parameters
	Goat GoatConfig `yaml:"goat"`

	// ORCA parallelization
	Pal PalConfig `yaml:"pal"`

	// Geometry optimization convergence
	Geom GeomConfig `yaml:"geom"`

	// Molecular properties
	System SystemConfig `yaml:"system"`

	// SLURM job settings
	Slurm SlurmConfig `yaml:"slurm"`

	// Input/output locations
	Output OutputConfig `yaml:"output"`
}

// MethodConfig holds the computational method selection
type MethodConfig struct {
	Name          string `yaml:"name"`           // e.g. "XTB2", "R2SCAN-3C", "PBE"
	OptLevel      string `yaml:"opt_level"`      // SLOPPYOPT, NORMALOPT, TIGHTOPT
	ExtraKeywords string `yaml:"extra_keywords"` // e.g. "GRID5 DEFGRID3"
}

// Keywords returns the optimization level combined with any extra keywords
func (m MethodConfig) Keywords() string {
	if m.ExtraKeywords == "" {
		return m.OptLevel
	}
	return m.OptLevel + " " + m.ExtraKeywords
}

// SolventConfig holds implicit solvation settings
type SolventConfig struct {
	Enabled bool   `yaml:"enabled"`
	Model   string `yaml:"model"` // CPCM, SMD, COSMO, ALPB, ddCOSMO, CPCMX
	Name    string `yaml:"name"`  // e.g. "Water", "DMSO"
}

// Keyword returns the ORCA solvation keyword, e.g. "CPCM(Water)", or the
// empty string when solvation is disabled
func (s SolventConfig) Keyword() string {
	if !s.Enabled {
		return ""
	}
	return fmt.Sprintf("%s(%s)", s.Model, s.Name)
}

// GoatConfig holds the GOAT algorithm parameters
type GoatConfig struct {
	Variant        Variant `yaml:"variant"`
	NWorkers       int     `yaml:"nworkers"`
	MaxCoresOpt    int     `yaml:"max_cores_opt"`
	MaxIter        int     `yaml:"max_iter"`
	MinGlobalIter  int     `yaml:"min_global_iter"`
	MaxEn          float64 `yaml:"max_en"`    // kcal/mol
	ConfTemp       float64 `yaml:"conf_temp"` // K
	KeepWorkerData bool    `yaml:"keep_worker_data"`

	// GOAT-ENTROPY specific
	MinDelS   float64 `yaml:"min_del_s"` // cal/mol/K
	ConfDegen string  `yaml:"conf_degen"`

	// GOAT-EXPLORE specific
	FreezeBonds  bool `yaml:"freeze_bonds"`
	FreezeAngles bool `yaml:"freeze_angles"`

	// Cyclic peptide constraints
	FreezeAmides   bool `yaml:"freeze_amides"`
	FreezeCisTrans bool `yaml:"freeze_cis_trans"`

	// Optional faster uphill method
	UseGFNUphill    bool   `yaml:"use_gfn_uphill"`
	GFNUphillMethod string `yaml:"gfn_uphill_method"` // gfnff, gfn2xtb, gfn1xtb, gfn0xtb
}

// PalConfig holds the ORCA parallelization block settings
type PalConfig struct {
	NProcs int `yaml:"nprocs"`
}

// GeomConfig holds the geometry optimization convergence thresholds
type GeomConfig struct {
	MaxIter int     `yaml:"max_iter"`
	TolE    float64 `yaml:"tol_e"`
	TolRMSG float64 `yaml:"tol_rms_g"`
	TolMaxG float64 `yaml:"tol_max_g"`
}

// SystemConfig holds molecular charge and spin multiplicity
type SystemConfig struct {
	Charge       int `yaml:"charge"`
	Multiplicity int `yaml:"multiplicity"`
}

// SlurmConfig holds scheduler job settings
type SlurmConfig struct {
	Nodes      int    `yaml:"nodes"`
	WallTime   string `yaml:"wall_time"`
	Memory     string `yaml:"memory"`
	Partition  string `yaml:"partition,omitempty"`
	ModuleLoad string `yaml:"module_load"`
	OrcaPath   string `yaml:"orca_path"`
	RSHCommand string `yaml:"rsh_command"`
}

// OutputConfig holds input discovery and output locations
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	XYZDir string `yaml:"xyz_dir"`
}

// Validate checks the structural validity of the configuration. Cross-field
// chemistry compatibility is the job of goat.Validate; this covers the
// constraints that make a configuration unusable regardless of policy.
func (c *Config) Validate() error {
	if c.Method.Name == "" {
		return fmt.Errorf("computational method is required")
	}

	if !c.Goat.Variant.Valid() {
		return fmt.Errorf("unknown GOAT variant: %s", c.Goat.Variant)
	}

	if c.Solvent.Enabled {
		valid := false
		for _, m := range SolventModels {
			if strings.EqualFold(c.Solvent.Model, m) {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown solvation model: %s", c.Solvent.Model)
		}
		if c.Solvent.Name == "" {
			return fmt.Errorf("solvent name is required when solvation is enabled")
		}
	}

	if c.Pal.NProcs <= 0 {
		return fmt.Errorf("nprocs must be positive")
	}

	if c.Goat.NWorkers <= 0 {
		return fmt.Errorf("nworkers must be positive")
	}

	if c.Goat.MaxCoresOpt <= 0 {
		return fmt.Errorf("max cores per optimization must be positive")
	}

	if c.Goat.MaxIter <= 0 {
		return fmt.Errorf("maximum global iterations must be positive")
	}

	if c.Geom.MaxIter <= 0 {
		return fmt.Errorf("maximum geometry iterations must be positive")
	}

	if c.System.Multiplicity < 1 {
		return fmt.Errorf("multiplicity must be at least 1")
	}

	if c.Goat.UseGFNUphill && c.Goat.GFNUphillMethod == "" {
		return fmt.Errorf("GFN uphill method is required when uphill optimization is enabled")
	}

	if c.Slurm.Nodes <= 0 {
		return fmt.Errorf("node count must be positive")
	}

	if c.Slurm.WallTime == "" {
		return fmt.Errorf("wall time is required")
	}

	if c.Slurm.Memory == "" {
		return fmt.Errorf("memory request is required")
	}

	return nil
}

// String returns a human-readable summary of the configuration
func (c *Config) String() string {
	solvent := "none"
	if c.Solvent.Enabled {
		solvent = c.Solvent.Keyword()
	}
	return fmt.Sprintf(`Generation Configuration:
  GOAT Variant: %s
  Method: %s
  Keywords: %s
  Solvent: %s

Parallelization:
  Processors: %d
  Workers: %d
  Max Cores per Optimization: %d

GOAT Parameters:
  Max Iterations: %d
  Min Global Iterations: %d
  Max Relative Energy: %g kcal/mol
  Conformer Temperature: %g K
  Keep Worker Data: %t

Molecular Properties:
  Charge: %d
  Multiplicity: %d

SLURM:
  Nodes: %d
  Wall Time: %s
  Memory: %s
  Partition: %s
  Module Load: %s
  ORCA Path: %s`,
		c.Goat.Variant,
		c.Method.Name,
		c.Method.Keywords(),
		solvent,
		c.Pal.NProcs,
		c.Goat.NWorkers,
		c.Goat.MaxCoresOpt,
		c.Goat.MaxIter,
		c.Goat.MinGlobalIter,
		c.Goat.MaxEn,
		c.Goat.ConfTemp,
		c.Goat.KeepWorkerData,
		c.System.Charge,
		c.System.Multiplicity,
		c.Slurm.Nodes,
		c.Slurm.WallTime,
		c.Slurm.Memory,
		c.Slurm.Partition,
		c.Slurm.ModuleLoad,
		c.Slurm.OrcaPath,
	)
}

// DefaultConfig returns the default configuration matching the values
// embedded in the generated templates
func DefaultConfig() *Config {
	return &Config{
		Method: MethodConfig{
			Name:     "XTB2",
			OptLevel: "NORMALOPT",
		},

		Solvent: SolventConfig{
			Enabled: false,
			Model:   ModelCPCM,
			Name:    "Water",
		},

		Goat: GoatConfig{
			Variant:         VariantGoat,
			NWorkers:        25,
			MaxCoresOpt:     32,
			MaxIter:         256,
			MinGlobalIter:   5,
			MaxEn:           12.0,
			ConfTemp:        298.15,
			KeepWorkerData:  false,
			MinDelS:         0.1,
			ConfDegen:       "AUTO",
			FreezeBonds:     true,
			FreezeAngles:    true,
			FreezeAmides:    true,
			FreezeCisTrans:  true,
			UseGFNUphill:    false,
			GFNUphillMethod: "gfn2xtb",
		},

		Pal: PalConfig{
			NProcs: 200,
		},

		Geom: GeomConfig{
			MaxIter: 500,
			TolE:    5e-6,
			TolRMSG: 1e-4,
			TolMaxG: 3e-4,
		},

		System: SystemConfig{
			Charge:       0,
			Multiplicity: 1,
		},

		Slurm: SlurmConfig{
			Nodes:      1,
			WallTime:   "96:00:00",
			Memory:     "400G",
			Partition:  "",
			ModuleLoad: "OpenMPI/4.1.6-GCC-13.2.0 ORCA/6.1.0",
			OrcaPath:   "/path/to/orca",
			RSHCommand: "sh",
		},

		Output: OutputConfig{
			Dir:    "goat_inputs",
			XYZDir: "xyzs",
		},
	}
}
