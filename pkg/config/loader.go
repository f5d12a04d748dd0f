package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads a configuration from a YAML file
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal on top of the defaults so omitted fields keep their
	// documented values
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadOrDefault loads config from file or returns the defaults, always
// applying environment variable overrides afterwards
func LoadOrDefault(path string) (*Config, error) {
	var config *Config

	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	if config == nil {
		for _, p := range []string{"goatgen.yaml", "config.yaml"} {
			if _, err := os.Stat(p); err == nil {
				loaded, err := Load(p)
				if err == nil {
					config = loaded
					break
				}
			}
		}
	}

	if config == nil {
		config = DefaultConfig()
	}

	MergeEnv(config)

	return config, nil
}

// Save saves a configuration to a YAML file
func Save(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// MergeEnv applies GOATGEN_* environment variable overrides to the
// configuration. Unparseable values are ignored.
func MergeEnv(config *Config) {
	if method := os.Getenv("GOATGEN_METHOD"); method != "" {
		config.Method.Name = method
	}

	if variant := os.Getenv("GOATGEN_VARIANT"); variant != "" {
		if v, err := ParseVariant(variant); err == nil {
			config.Goat.Variant = v
		}
	}

	if nprocs := os.Getenv("GOATGEN_NPROCS"); nprocs != "" {
		if n, err := strconv.Atoi(nprocs); err == nil && n > 0 {
			config.Pal.NProcs = n
		}
	}

	if nworkers := os.Getenv("GOATGEN_NWORKERS"); nworkers != "" {
		if n, err := strconv.Atoi(nworkers); err == nil && n > 0 {
			config.Goat.NWorkers = n
		}
	}

	if maxCores := os.Getenv("GOATGEN_MAX_CORES_OPT"); maxCores != "" {
		if n, err := strconv.Atoi(maxCores); err == nil && n > 0 {
			config.Goat.MaxCoresOpt = n
		}
	}

	if solvent := os.Getenv("GOATGEN_SOLVENT"); solvent != "" {
		if enabled, err := strconv.ParseBool(solvent); err == nil {
			config.Solvent.Enabled = enabled
		}
	}

	if model := os.Getenv("GOATGEN_SOLVENT_MODEL"); model != "" {
		for _, valid := range SolventModels {
			if strings.EqualFold(model, valid) {
				config.Solvent.Model = valid
				break
			}
		}
	}

	if name := os.Getenv("GOATGEN_SOLVENT_NAME"); name != "" {
		config.Solvent.Name = name
	}

	if charge := os.Getenv("GOATGEN_CHARGE"); charge != "" {
		if n, err := strconv.Atoi(charge); err == nil {
			config.System.Charge = n
		}
	}

	if mult := os.Getenv("GOATGEN_MULTIPLICITY"); mult != "" {
		if n, err := strconv.Atoi(mult); err == nil && n >= 1 {
			config.System.Multiplicity = n
		}
	}

	if partition := os.Getenv("GOATGEN_PARTITION"); partition != "" {
		config.Slurm.Partition = partition
	}

	if wallTime := os.Getenv("GOATGEN_WALL_TIME"); wallTime != "" {
		config.Slurm.WallTime = wallTime
	}

	if memory := os.Getenv("GOATGEN_MEMORY"); memory != "" {
		config.Slurm.Memory = memory
	}

	if moduleLoad := os.Getenv("GOATGEN_MODULE_LOAD"); moduleLoad != "" {
		config.Slurm.ModuleLoad = moduleLoad
	}

	if orcaPath := os.Getenv("GOATGEN_ORCA_PATH"); orcaPath != "" {
		config.Slurm.OrcaPath = orcaPath
	}

	if dir := os.Getenv("GOATGEN_OUTPUT_DIR"); dir != "" {
		config.Output.Dir = dir
	}

	if xyzDir := os.Getenv("GOATGEN_XYZ_DIR"); xyzDir != "" {
		config.Output.XYZDir = xyzDir
	}
}

// MergeOverrides applies CLI flag overrides to the configuration
func MergeOverrides(config *Config, overrides map[string]interface{}) {
	for key, value := range overrides {
		switch key {
		case "method":
			if method, ok := value.(string); ok && method != "" {
				config.Method.Name = method
			}
		case "variant":
			if variant, ok := value.(string); ok && variant != "" {
				if v, err := ParseVariant(variant); err == nil {
					config.Goat.Variant = v
				}
			}
		case "nprocs":
			if n, ok := value.(int); ok && n > 0 {
				config.Pal.NProcs = n
			}
		case "nworkers":
			if n, ok := value.(int); ok && n > 0 {
				config.Goat.NWorkers = n
			}
		case "charge":
			if n, ok := value.(int); ok {
				config.System.Charge = n
			}
		case "multiplicity":
			if n, ok := value.(int); ok && n >= 1 {
				config.System.Multiplicity = n
			}
		case "partition":
			if partition, ok := value.(string); ok {
				config.Slurm.Partition = partition
			}
		case "output_dir":
			if dir, ok := value.(string); ok && dir != "" {
				config.Output.Dir = dir
			}
		case "xyz_dir":
			if dir, ok := value.(string); ok && dir != "" {
				config.Output.XYZDir = dir
			}
		}
	}
}
