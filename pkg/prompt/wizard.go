package prompt

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/pepconf/goatgen/pkg/config"
	"github.com/pepconf/goatgen/pkg/goat"
	"github.com/pepconf/goatgen/pkg/molecule"
)

const commonSolvents = `Common solvents:
Water, Acetone, Acetonitrile, Ammonia, Benzene, CCl4,
CH2Cl2, CHCl3, Cyclohexane, DMF, DMSO, Ethanol, Ether,
Hexane, Methanol, Octanol, Pyridine, THF, Toluene`

// SelectVariant asks which GOAT variant to configure
func SelectVariant() (config.Variant, error) {
	options := make([]string, len(goat.VariantCatalog))
	descriptions := make(map[string]string, len(goat.VariantCatalog))
	for i, info := range goat.VariantCatalog {
		options[i] = string(info.Variant)
		descriptions[options[i]] = info.Description
	}

	var selected string
	prompt := &survey.Select{
		Message: "Select GOAT variant:",
		Options: options,
		Description: func(value string, index int) string {
			return descriptions[value]
		},
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return config.ParseVariant(selected)
}

// SelectMolecules asks which of the discovered molecules to process
func SelectMolecules(molecules []molecule.Molecule) ([]molecule.Molecule, error) {
	options := make([]string, len(molecules))
	byName := make(map[string]molecule.Molecule, len(molecules))
	for i, mol := range molecules {
		options[i] = mol.Name
		byName[mol.Name] = mol
	}

	var selected []string
	prompt := &survey.MultiSelect{
		Message: "Select XYZ files to process:",
		Options: options,
	}
	if err := survey.AskOne(prompt, &selected, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}

	out := make([]molecule.Molecule, 0, len(selected))
	for _, name := range selected {
		out = append(out, byName[name])
	}
	return out, nil
}

// ConfirmWorkerCorrection asks whether to accept an auto-corrected worker
// count
func ConfirmWorkerCorrection(from, to int) (bool, error) {
	return askBool(fmt.Sprintf("Adjust NWORKERS from %d to %d?", from, to), true)
}

// ForConfig walks through every configuration section interactively,
// updating cfg in place. The variant must already be set; variant-specific
// questions are only asked when they apply.
func ForConfig(cfg *config.Config) error {
	var err error

	// Computational method
	if cfg.Method.Name, err = askString(
		"Computational method (e.g., XTB2, R2SCAN-3C, PBE):", cfg.Method.Name); err != nil {
		return err
	}

	// Solvation
	if cfg.Solvent.Enabled, err = askBool("Use implicit solvation?", cfg.Solvent.Enabled); err != nil {
		return err
	}
	if cfg.Solvent.Enabled {
		models := config.SolventModels
		if goat.IsXTBMethod(cfg.Method.Name) {
			models = []string{config.ModelALPB, config.ModelDDCOSMO, config.ModelCPCMX}
		}
		def := cfg.Solvent.Model
		if goat.IsXTBMethod(cfg.Method.Name) && !goat.SolventModelAllowedForXTB(def) {
			def = config.ModelALPB
		}
		if cfg.Solvent.Model, err = askSelect("Solvation model:", models, def); err != nil {
			return err
		}
		if cfg.Solvent.Name, err = askStringWithHelp(
			"Solvent name:", cfg.Solvent.Name, commonSolvents); err != nil {
			return err
		}
	}

	// Optimization level and extra keywords
	if cfg.Method.OptLevel, err = askSelect("Optimization level:",
		[]string{"SLOPPYOPT", "NORMALOPT", "TIGHTOPT"}, cfg.Method.OptLevel); err != nil {
		return err
	}
	if cfg.Method.ExtraKeywords, err = askString(
		"Additional keywords (optional, e.g., GRID5, DEFGRID3):", cfg.Method.ExtraKeywords); err != nil {
		return err
	}

	// Parallelization
	if cfg.Pal.NProcs, err = askInt("Total number of processors:", cfg.Pal.NProcs); err != nil {
		return err
	}
	if cfg.Goat.NWorkers, err = askInt("Number of workers:", cfg.Goat.NWorkers); err != nil {
		return err
	}
	if cfg.Goat.MaxCoresOpt, err = askInt("Max cores per optimization:", cfg.Goat.MaxCoresOpt); err != nil {
		return err
	}

	// GOAT algorithm parameters
	if cfg.Goat.MaxIter, err = askInt("Maximum global iterations:", cfg.Goat.MaxIter); err != nil {
		return err
	}
	if cfg.Goat.MinGlobalIter, err = askInt("Minimum global iterations:", cfg.Goat.MinGlobalIter); err != nil {
		return err
	}
	if cfg.Goat.MaxEn, err = askFloat("Maximum relative energy (kcal/mol):", cfg.Goat.MaxEn); err != nil {
		return err
	}
	if cfg.Goat.ConfTemp, err = askFloat("Conformational temperature (K):", cfg.Goat.ConfTemp); err != nil {
		return err
	}
	if cfg.Goat.KeepWorkerData, err = askBool("Keep worker output files?", cfg.Goat.KeepWorkerData); err != nil {
		return err
	}

	// Variant-specific parameters
	if cfg.Goat.Variant == config.VariantEntropy {
		if cfg.Goat.MinDelS, err = askFloat(
			"Minimum entropy difference (cal/mol/K):", cfg.Goat.MinDelS); err != nil {
			return err
		}
		if cfg.Goat.ConfDegen, err = askStringWithHelp(
			"Conformer degeneracy:", cfg.Goat.ConfDegen, "AUTO, AUTOMAX, or a number"); err != nil {
			return err
		}
	}

	if cfg.Goat.Variant == config.VariantExplore {
		if cfg.Goat.FreezeBonds, err = askBool(
			"Freeze bonds during uphill step?", cfg.Goat.FreezeBonds); err != nil {
			return err
		}
		if cfg.Goat.FreezeAngles, err = askBool(
			"Freeze angles during uphill step?", cfg.Goat.FreezeAngles); err != nil {
			return err
		}
	}

	// Cyclic peptide constraints
	if cfg.Goat.FreezeAmides, err = askBool(
		"Freeze amide bond chirality (cis/trans)?", cfg.Goat.FreezeAmides); err != nil {
		return err
	}
	if cfg.Goat.FreezeCisTrans, err = askBool(
		"Freeze double bond stereochemistry?", cfg.Goat.FreezeCisTrans); err != nil {
		return err
	}

	// Uphill step optimization
	if cfg.Goat.UseGFNUphill, err = askBool(
		"Use faster GFN method for uphill steps?", cfg.Goat.UseGFNUphill); err != nil {
		return err
	}
	if cfg.Goat.UseGFNUphill {
		if cfg.Goat.GFNUphillMethod, err = askSelect("GFN method for uphill:",
			[]string{"gfnff", "gfn2xtb", "gfn1xtb", "gfn0xtb"}, cfg.Goat.GFNUphillMethod); err != nil {
			return err
		}
	}

	// Geometry optimization
	if cfg.Geom.MaxIter, err = askInt("Max geometry iterations:", cfg.Geom.MaxIter); err != nil {
		return err
	}
	if cfg.Geom.TolE, err = askFloat("Energy tolerance:", cfg.Geom.TolE); err != nil {
		return err
	}
	if cfg.Geom.TolRMSG, err = askFloat("RMS gradient tolerance:", cfg.Geom.TolRMSG); err != nil {
		return err
	}
	if cfg.Geom.TolMaxG, err = askFloat("Max gradient tolerance:", cfg.Geom.TolMaxG); err != nil {
		return err
	}

	// Molecular properties
	if cfg.System.Charge, err = askInt("Charge:", cfg.System.Charge); err != nil {
		return err
	}
	for {
		if cfg.System.Multiplicity, err = askInt("Multiplicity:", cfg.System.Multiplicity); err != nil {
			return err
		}
		if cfg.System.Multiplicity >= 1 {
			break
		}
		fmt.Println("Multiplicity must be at least 1.")
	}

	// SLURM settings
	if cfg.Slurm.Nodes, err = askInt("Number of nodes:", cfg.Slurm.Nodes); err != nil {
		return err
	}
	if cfg.Slurm.WallTime, err = askString("Wall time (e.g., 72:00:00):", cfg.Slurm.WallTime); err != nil {
		return err
	}
	if cfg.Slurm.Memory, err = askString("Memory (e.g., 400G):", cfg.Slurm.Memory); err != nil {
		return err
	}
	if cfg.Slurm.Partition, err = askString(
		"Partition (leave empty if not needed):", cfg.Slurm.Partition); err != nil {
		return err
	}
	if cfg.Slurm.ModuleLoad, err = askString("Module load command:", cfg.Slurm.ModuleLoad); err != nil {
		return err
	}
	if cfg.Slurm.OrcaPath, err = askString("ORCA executable path:", cfg.Slurm.OrcaPath); err != nil {
		return err
	}
	if cfg.Slurm.RSHCommand, err = askString("RSH command:", cfg.Slurm.RSHCommand); err != nil {
		return err
	}

	// Output
	if cfg.Output.Dir, err = askString(
		"Output directory for generated files:", cfg.Output.Dir); err != nil {
		return err
	}

	return nil
}
