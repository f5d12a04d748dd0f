package render

import (
	"strconv"
	"strings"

	"github.com/pepconf/goatgen/pkg/config"
	"github.com/pepconf/goatgen/pkg/molecule"
)

type inputView struct {
	Variant        string
	Molecule       string
	Directive      string
	NProcs         int
	NWorkers       int
	MaxCoresOpt    int
	MaxIter        int
	MinGlobalIter  int
	MaxEn          string
	KeepWorkerData string
	ConfTemp       string
	Entropy        bool
	MinDelS        string
	ConfDegen      string
	Explore        bool
	FreezeBonds    string
	FreezeAngles   string
	FreezeAmides   bool
	FreezeCisTrans bool
	GFNUphill      string
	GeomMaxIter    int
	TolE           string
	TolRMSG        string
	TolMaxG        string
	Charge         int
	Multiplicity   int
	XYZPath        string
}

type jobScriptView struct {
	JobName    string
	Nodes      int
	NTasks     int
	WallTime   string
	Memory     string
	Partition  string
	ModuleLoad string
	RSHCommand string
	OrcaPath   string
	InputFile  string
	OutputFile string
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// directive composes the ORCA keyword line from the variant, method, solvent
// keyword, and extra keywords, skipping empty parts
func directive(cfg *config.Config) string {
	parts := []string{
		string(cfg.Goat.Variant),
		cfg.Method.Name,
		cfg.Solvent.Keyword(),
		cfg.Method.Keywords(),
	}
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// InputFile renders the ORCA input file for one molecule. The configuration
// is trusted to have been validated already; no checks are repeated here.
func InputFile(cfg *config.Config, mol molecule.Molecule) Artifact {
	view := inputView{
		Variant:        string(cfg.Goat.Variant),
		Molecule:       mol.Name,
		Directive:      directive(cfg),
		NProcs:         cfg.Pal.NProcs,
		NWorkers:       cfg.Goat.NWorkers,
		MaxCoresOpt:    cfg.Goat.MaxCoresOpt,
		MaxIter:        cfg.Goat.MaxIter,
		MinGlobalIter:  cfg.Goat.MinGlobalIter,
		MaxEn:          formatFloat(cfg.Goat.MaxEn),
		KeepWorkerData: strconv.FormatBool(cfg.Goat.KeepWorkerData),
		ConfTemp:       formatFloat(cfg.Goat.ConfTemp),
		Entropy:        cfg.Goat.Variant == config.VariantEntropy,
		MinDelS:        formatFloat(cfg.Goat.MinDelS),
		ConfDegen:      cfg.Goat.ConfDegen,
		Explore:        cfg.Goat.Variant == config.VariantExplore,
		FreezeBonds:    strconv.FormatBool(cfg.Goat.FreezeBonds),
		FreezeAngles:   strconv.FormatBool(cfg.Goat.FreezeAngles),
		FreezeAmides:   cfg.Goat.FreezeAmides,
		FreezeCisTrans: cfg.Goat.FreezeCisTrans,
		GeomMaxIter:    cfg.Geom.MaxIter,
		TolE:           formatFloat(cfg.Geom.TolE),
		TolRMSG:        formatFloat(cfg.Geom.TolRMSG),
		TolMaxG:        formatFloat(cfg.Geom.TolMaxG),
		Charge:         cfg.System.Charge,
		Multiplicity:   cfg.System.Multiplicity,
		XYZPath:        mol.Path,
	}
	if cfg.Goat.UseGFNUphill {
		view.GFNUphill = cfg.Goat.GFNUphillMethod
	}

	var buf strings.Builder
	// the only possible error is a template bug, caught by tests
	_ = inputTemplate.Execute(&buf, view)

	return Artifact{
		Filename: InputFileName(mol.Name, cfg.Goat.Variant),
		Content:  buf.String(),
	}
}

// JobScript renders the sbatch script that runs ORCA on the rendered input
// file for one molecule
func JobScript(cfg *config.Config, mol molecule.Molecule) Artifact {
	suffix := cfg.Goat.Variant.FileSuffix()
	view := jobScriptView{
		JobName:    mol.Name + "_" + suffix,
		Nodes:      cfg.Slurm.Nodes,
		NTasks:     cfg.Pal.NProcs,
		WallTime:   cfg.Slurm.WallTime,
		Memory:     cfg.Slurm.Memory,
		Partition:  cfg.Slurm.Partition,
		ModuleLoad: cfg.Slurm.ModuleLoad,
		RSHCommand: cfg.Slurm.RSHCommand,
		OrcaPath:   cfg.Slurm.OrcaPath,
		InputFile:  InputFileName(mol.Name, cfg.Goat.Variant),
		OutputFile: OutputFileName(mol.Name, cfg.Goat.Variant),
	}

	var buf strings.Builder
	_ = jobScriptTemplate.Execute(&buf, view)

	return Artifact{
		Filename:   JobScriptName(mol.Name, cfg.Goat.Variant),
		Content:    buf.String(),
		Executable: true,
	}
}

// SubmitHelper renders the batch submission script over the given job script
// file names. The helper submits each script in order, records failures
// without stopping, and prints a summary with the collected job ids.
func SubmitHelper(scripts []string) Artifact {
	var buf strings.Builder
	_ = submitHelperTemplate.Execute(&buf, struct{ Scripts []string }{Scripts: scripts})

	return Artifact{
		Filename:   SubmitHelperName,
		Content:    buf.String(),
		Executable: true,
	}
}
