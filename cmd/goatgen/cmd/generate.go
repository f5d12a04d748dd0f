package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pepconf/goatgen/pkg/config"
	"github.com/pepconf/goatgen/pkg/goat"
	"github.com/pepconf/goatgen/pkg/logger"
	"github.com/pepconf/goatgen/pkg/molecule"
	"github.com/pepconf/goatgen/pkg/prompt"
	"github.com/pepconf/goatgen/pkg/render"
	"github.com/pepconf/goatgen/pkg/report"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate ORCA input files and SLURM job scripts",
	Long: `Generate an ORCA GOAT input file and sbatch script for each selected
molecule, plus one batch submission helper. Runs interactively unless
--defaults is given or stdin is not a terminal.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("xyz-dir", "", "directory containing XYZ coordinate files")
	generateCmd.Flags().StringP("output-dir", "o", "", "directory for generated files")
	generateCmd.Flags().StringP("preset", "p", "", "start from a saved preset")
	generateCmd.Flags().StringP("molecules", "m", "", `molecules to process: "all" or 1-based indices (e.g. "1 3 4")`)
	generateCmd.Flags().String("variant", "", "GOAT variant (GOAT, GOAT-ENTROPY, GOAT-EXPLORE, GOAT-DIVERSITY)")
	generateCmd.Flags().String("method", "", "computational method")
	generateCmd.Flags().Bool("defaults", false, "skip the wizard and use defaults/config values")
	generateCmd.Flags().BoolP("yes", "y", false, "accept auto-corrections without asking")
	generateCmd.Flags().Bool("force", false, "render even when validation reports errors")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGenerateConfig(cmd)
	if err != nil {
		return err
	}

	interactive := prompt.Interactive()
	useDefaults, _ := cmd.Flags().GetBool("defaults")

	// Variant first; it decides which wizard questions apply
	if variantFlag, _ := cmd.Flags().GetString("variant"); variantFlag == "" && interactive && !useDefaults {
		variant, err := prompt.SelectVariant()
		if err != nil {
			return err
		}
		cfg.Goat.Variant = variant
	}
	if desc := goat.Describe(cfg.Goat.Variant); desc != "" {
		logger.Infof("%s: %s", cfg.Goat.Variant, desc)
	}

	molecules, err := selectMolecules(cmd, cfg, interactive)
	if err != nil {
		return err
	}
	logger.Successf("Selected %d molecule(s)", len(molecules))

	if interactive && !useDefaults {
		if err := prompt.ForConfig(cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cfg, err = checkCompatibility(cmd, cfg, interactive)
	if err != nil {
		return err
	}

	artifacts := renderAll(cfg, molecules)

	if err := persist(cfg.Output.Dir, artifacts); err != nil {
		return err
	}

	names := make([]string, len(molecules))
	for i, mol := range molecules {
		names[i] = mol.Name
	}
	manifest := report.New(cfg, names, artifacts)
	if err := manifest.Save(cfg.Output.Dir); err != nil {
		return err
	}

	printSummary(cfg, manifest)
	return nil
}

// loadGenerateConfig assembles the starting configuration: preset or config
// file, then environment overrides, then flag overrides
func loadGenerateConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config

	if presetName, _ := cmd.Flags().GetString("preset"); presetName != "" {
		store, err := config.LoadPresets()
		if err != nil {
			return nil, fmt.Errorf("failed to load presets: %w", err)
		}
		preset, err := store.Get(presetName)
		if err != nil {
			return nil, err
		}
		c := preset.Config
		cfg = &c
		config.MergeEnv(cfg)
		logger.Infof("Using preset %s", presetName)
	} else {
		loaded, err := config.LoadOrDefault(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	overrides := map[string]interface{}{}
	if v, _ := cmd.Flags().GetString("variant"); v != "" {
		overrides["variant"] = v
	}
	if v, _ := cmd.Flags().GetString("method"); v != "" {
		overrides["method"] = v
	}
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		overrides["output_dir"] = v
	}
	if v, _ := cmd.Flags().GetString("xyz-dir"); v != "" {
		overrides["xyz_dir"] = v
	}
	config.MergeOverrides(cfg, overrides)

	return cfg, nil
}

// selectMolecules discovers the XYZ files and narrows them to the requested
// set, interactively when no selection flag was given
func selectMolecules(cmd *cobra.Command, cfg *config.Config, interactive bool) ([]molecule.Molecule, error) {
	molecules, err := molecule.Discover(cfg.Output.XYZDir)
	if err != nil {
		return nil, err
	}
	if len(molecules) == 0 {
		return nil, fmt.Errorf("no XYZ files found in %s", cfg.Output.XYZDir)
	}
	logger.Infof("Found %d XYZ file(s) in %s", len(molecules), cfg.Output.XYZDir)

	if selection, _ := cmd.Flags().GetString("molecules"); selection != "" {
		selected, warnings := molecule.Select(molecules, selection)
		for _, w := range warnings {
			logger.Warn(w)
		}
		if len(selected) == 0 {
			return nil, fmt.Errorf("no valid molecules selected")
		}
		return selected, nil
	}

	if interactive {
		return prompt.SelectMolecules(molecules)
	}

	return molecules, nil
}

// checkCompatibility runs the cross-field checks, prints the report, applies
// the auto-correction policy, and enforces the blocking policy
func checkCompatibility(cmd *cobra.Command, cfg *config.Config, interactive bool) (*config.Config, error) {
	rep := goat.Validate(cfg)

	for _, check := range rep.Checks {
		switch check.Severity {
		case goat.Pass:
			logger.Success(check.Message)
		case goat.Warn:
			logger.Warn(check.Message)
		case goat.Error:
			logger.Error(check.Message)
		}
	}

	if rep.Corrected != nil {
		accept, _ := cmd.Flags().GetBool("yes")
		if !accept && interactive {
			confirmed, err := prompt.ConfirmWorkerCorrection(
				cfg.Goat.NWorkers, rep.Corrected.Goat.NWorkers)
			if err != nil {
				return nil, err
			}
			accept = confirmed
		} else {
			accept = true
		}
		if accept {
			logger.Infof("NWORKERS adjusted to %d", rep.Corrected.Goat.NWorkers)
			cfg = rep.Corrected
		}
	}

	if rep.HasErrors() {
		if force, _ := cmd.Flags().GetBool("force"); !force {
			return nil, fmt.Errorf("configuration rejected; fix your input and retry, or pass --force to generate anyway")
		}
		logger.Warn("Generating despite validation errors (--force)")
	}

	return cfg, nil
}

// renderAll produces every artifact for the batch: one input file and one
// job script per molecule, plus the shared submission helper
func renderAll(cfg *config.Config, molecules []molecule.Molecule) []render.Artifact {
	var artifacts []render.Artifact
	var scripts []string
	for _, mol := range molecules {
		artifacts = append(artifacts, render.InputFile(cfg, mol))
		job := render.JobScript(cfg, mol)
		artifacts = append(artifacts, job)
		scripts = append(scripts, job.Filename)
	}
	artifacts = append(artifacts, render.SubmitHelper(scripts))
	return artifacts
}

// persist writes the artifacts into the output directory, marking scripts
// executable
func persist(dir string, artifacts []render.Artifact) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	for _, a := range artifacts {
		mode := os.FileMode(0644)
		if a.Executable {
			mode = 0755
		}
		path := filepath.Join(dir, a.Filename)
		if err := os.WriteFile(path, []byte(a.Content), mode); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Successf("Created: %s", path)
	}

	return nil
}

func printSummary(cfg *config.Config, manifest *report.Manifest) {
	fmt.Println()
	logger.Section("Generation Complete")
	logger.KeyValue("GOAT variant", cfg.Goat.Variant)
	logger.KeyValue("Method", cfg.Method.Name)
	logger.KeyValue("Molecules", len(manifest.Molecules))
	logger.KeyValue("Output directory", cfg.Output.Dir)
	fmt.Println()
	logger.List("To submit jobs:", []string{
		fmt.Sprintf("cd %s && ./%s", cfg.Output.Dir, render.SubmitHelperName),
		fmt.Sprintf("goatgen submit --dir %s", cfg.Output.Dir),
	})
	logger.List("To monitor jobs:", []string{
		"squeue -u $USER",
		fmt.Sprintf("goatgen status --dir %s", cfg.Output.Dir),
	})
	fmt.Println()
	logger.List("Remember to:", []string{
		"Verify the ORCA path in the sbatch scripts",
		"Check module names match your cluster",
		"Adjust memory/time limits as needed",
		"Copy XYZ files to the output directory or adjust paths",
	})
}
