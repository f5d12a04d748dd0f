// Package render turns a validated configuration and a molecule into the
// text artifacts of a GOAT run: the ORCA input file, the sbatch job script,
// and the shared batch submission helper. Rendering is deterministic; the
// same inputs always produce byte-identical output.
package render

import (
	"fmt"

	"github.com/pepconf/goatgen/pkg/config"
)

// Artifact is one rendered file, to be persisted by the caller. Executable
// marks files that should carry the execute bit (shell scripts).
type Artifact struct {
	Filename   string
	Content    string
	Executable bool
}

// SubmitHelperName is the fixed file name of the batch submission helper
const SubmitHelperName = "submit_all_jobs.sh"

// InputFileName returns the ORCA input file name for a molecule,
// e.g. "peptide1_goat_entropy.inp"
func InputFileName(name string, v config.Variant) string {
	return fmt.Sprintf("%s_%s.inp", name, v.FileSuffix())
}

// JobScriptName returns the sbatch script file name for a molecule,
// e.g. "run_peptide1_goat_entropy.sh"
func JobScriptName(name string, v config.Variant) string {
	return fmt.Sprintf("run_%s_%s.sh", name, v.FileSuffix())
}

// OutputFileName returns the ORCA log file name the job script redirects to
func OutputFileName(name string, v config.Variant) string {
	return fmt.Sprintf("%s_%s.out", name, v.FileSuffix())
}
