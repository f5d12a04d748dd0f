package render

import (
	"strings"
	"testing"

	"github.com/pepconf/goatgen/pkg/config"
	"github.com/pepconf/goatgen/pkg/molecule"
)

var testMol = molecule.Molecule{Name: "peptide1", Path: "xyzs/peptide1.xyz"}

func TestInputFileDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	a := InputFile(cfg, testMol)

	if a.Filename != "peptide1_goat.inp" {
		t.Errorf("filename = %q, expected peptide1_goat.inp", a.Filename)
	}
	if a.Executable {
		t.Error("input files must not be executable")
	}

	for _, want := range []string{
		"! GOAT XTB2 NORMALOPT",
		"nprocs 200",
		"NWORKERS 25",
		"MAXCORESOPT 32",
		"MAXITER 256",
		"MINGLOBALITER 5",
		"MAXEN 12",
		"KEEPWORKERDATA false",
		"CONFTEMP 298.15",
		"FREEZEAMIDES true",
		"FREEZECISTRANS true",
		"MaxIter 500",
		"TolE 5e-06",
		"TolRMSG 0.0001",
		"TolMaxG 0.0003",
		"* xyzfile 0 1 xyzs/peptide1.xyz",
	} {
		if !strings.Contains(a.Content, want) {
			t.Errorf("input missing %q", want)
		}
	}

	for _, notWant := range []string{"MAXENTROPY", "MINDELS", "FREEZEBONDS", "GFNUPHILL"} {
		if strings.Contains(a.Content, notWant) {
			t.Errorf("plain GOAT input should not contain %q", notWant)
		}
	}
}

func TestInputFileEntropy(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Goat.Variant = config.VariantEntropy
	a := InputFile(cfg, testMol)

	if a.Filename != "peptide1_goat_entropy.inp" {
		t.Errorf("filename = %q", a.Filename)
	}
	for _, want := range []string{
		"! GOAT-ENTROPY XTB2",
		"MAXENTROPY true",
		"MINDELS 0.1",
		"CONFDEGEN AUTO",
	} {
		if !strings.Contains(a.Content, want) {
			t.Errorf("entropy input missing %q", want)
		}
	}
	if strings.Contains(a.Content, "FREEZEBONDS") {
		t.Error("entropy input should not contain explore parameters")
	}
}

func TestInputFileExplore(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Goat.Variant = config.VariantExplore
	a := InputFile(cfg, testMol)

	for _, want := range []string{"FREEZEBONDS true", "FREEZEANGLES true"} {
		if !strings.Contains(a.Content, want) {
			t.Errorf("explore input missing %q", want)
		}
	}
	if strings.Contains(a.Content, "MAXENTROPY") {
		t.Error("explore input should not contain entropy parameters")
	}
}

func TestInputFileSolvent(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Solvent.Enabled = true
	cfg.Solvent.Model = config.ModelALPB
	cfg.Solvent.Name = "Water"
	a := InputFile(cfg, testMol)

	if !strings.Contains(a.Content, "! GOAT XTB2 ALPB(Water) NORMALOPT") {
		t.Errorf("directive line missing solvent keyword:\n%s", a.Content)
	}
}

func TestInputFileGFNUphill(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Goat.UseGFNUphill = true
	cfg.Goat.GFNUphillMethod = "gfnff"
	a := InputFile(cfg, testMol)

	if !strings.Contains(a.Content, "GFNUPHILL gfnff") {
		t.Error("input missing GFNUPHILL line")
	}
}

func TestInputFileFreezeFlagsOff(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Goat.FreezeAmides = false
	cfg.Goat.FreezeCisTrans = false
	a := InputFile(cfg, testMol)

	if strings.Contains(a.Content, "FREEZEAMIDES") || strings.Contains(a.Content, "FREEZECISTRANS") {
		t.Error("freeze lines should be omitted when the flags are off")
	}
}

func TestInputFileDeterministic(t *testing.T) {
	cfg := config.DefaultConfig()
	first := InputFile(cfg, testMol)
	second := InputFile(cfg, testMol)
	if first.Content != second.Content {
		t.Error("rendering is not deterministic")
	}
}

func TestJobScript(t *testing.T) {
	cfg := config.DefaultConfig()
	a := JobScript(cfg, testMol)

	if a.Filename != "run_peptide1_goat.sh" {
		t.Errorf("filename = %q", a.Filename)
	}
	if !a.Executable {
		t.Error("job scripts must be executable")
	}

	for _, want := range []string{
		"#!/bin/bash",
		"#SBATCH --job-name=peptide1_goat",
		"#SBATCH --nodes=1",
		"#SBATCH --ntasks=200",
		"#SBATCH --time=96:00:00",
		"#SBATCH --mem=400G",
		"module load OpenMPI/4.1.6-GCC-13.2.0 ORCA/6.1.0",
		`export RSH_COMMAND="sh"`,
		"/path/to/orca peptide1_goat.inp > peptide1_goat.out",
	} {
		if !strings.Contains(a.Content, want) {
			t.Errorf("job script missing %q", want)
		}
	}

	if strings.Contains(a.Content, "--partition") {
		t.Error("partition line should be omitted when no partition is set")
	}
}

func TestJobScriptPartition(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Slurm.Partition = "long"
	a := JobScript(cfg, testMol)

	if !strings.Contains(a.Content, "#SBATCH --partition=long") {
		t.Error("job script missing partition line")
	}
}

func TestSubmitHelper(t *testing.T) {
	scripts := []string{"run_peptide1_goat.sh", "run_peptide2_goat.sh"}
	a := SubmitHelper(scripts)

	if a.Filename != SubmitHelperName {
		t.Errorf("filename = %q, expected %q", a.Filename, SubmitHelperName)
	}
	if !a.Executable {
		t.Error("submit helper must be executable")
	}
	for _, script := range scripts {
		if !strings.Contains(a.Content, `"`+script+`"`) {
			t.Errorf("helper missing script %q", script)
		}
	}
	if !strings.Contains(a.Content, "Submitted batch job") {
		t.Error("helper should extract job ids from sbatch output")
	}
}

func TestFileNames(t *testing.T) {
	if got := InputFileName("mol", config.VariantEntropy); got != "mol_goat_entropy.inp" {
		t.Errorf("InputFileName = %q", got)
	}
	if got := JobScriptName("mol", config.VariantDiversity); got != "run_mol_goat_diversity.sh" {
		t.Errorf("JobScriptName = %q", got)
	}
	if got := OutputFileName("mol", config.VariantGoat); got != "mol_goat.out" {
		t.Errorf("OutputFileName = %q", got)
	}
}
