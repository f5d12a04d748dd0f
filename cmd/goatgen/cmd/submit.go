package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pepconf/goatgen/pkg/logger"
	"github.com/pepconf/goatgen/pkg/report"
	"github.com/pepconf/goatgen/pkg/scheduler"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit generated job scripts to SLURM",
	Long: `Submit every job script from a generation run via sbatch. Scripts are
taken from the run manifest when present, otherwise every run_*.sh in the
directory is submitted. Failed submissions do not stop the batch.`,
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringP("dir", "d", "goat_inputs", "directory containing generated job scripts")
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")

	scripts, manifest, err := findScripts(dir)
	if err != nil {
		return err
	}
	if len(scripts) == 0 {
		return fmt.Errorf("no job scripts found in %s", dir)
	}

	// sbatch resolves the script path relative to the submission directory,
	// and ORCA writes its output next to the script
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("failed to enter %s: %w", dir, err)
	}

	logger.Progressf("Submitting %d job(s)", len(scripts))
	results := scheduler.New().SubmitAll(scripts)

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "SCRIPT\tJOB ID\tSTATUS")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%s\t-\tFAILED: %v\n", r.Script, r.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\tsubmitted\n", r.Script, r.JobID)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	jobIDs, failed := scheduler.Summarize(results)
	fmt.Println()
	logger.Successf("Submitted %d of %d job(s)", len(jobIDs), len(results))
	for _, r := range failed {
		logger.Errorf("%s: %v", r.Script, r.Err)
	}

	if manifest != nil && len(jobIDs) > 0 {
		if err := manifest.RecordJobIDs(".", jobIDs); err != nil {
			logger.Warnf("failed to record job ids in manifest: %v", err)
		}
	}

	if len(jobIDs) == 0 {
		return fmt.Errorf("all submissions failed")
	}
	return nil
}

// findScripts returns the job scripts to submit, preferring the manifest
// written at generation time over a directory glob
func findScripts(dir string) ([]string, *report.Manifest, error) {
	manifest, err := report.Load(dir)
	if err == nil && len(manifest.JobScripts) > 0 {
		return manifest.JobScripts, manifest, nil
	}

	matches, err := filepath.Glob(filepath.Join(dir, "run_*.sh"))
	if err != nil {
		return nil, nil, err
	}
	sort.Strings(matches)

	scripts := make([]string, len(matches))
	for i, m := range matches {
		scripts[i] = filepath.Base(m)
	}
	return scripts, nil, nil
}
