package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pepconf/goatgen/pkg/logger"
	"github.com/pepconf/goatgen/pkg/report"
	"github.com/pepconf/goatgen/pkg/scheduler"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show queue status of submitted jobs",
	Long: `Query squeue for the jobs recorded in a run manifest. With --watch the
status is polled until every job has left the queue or the command is
interrupted.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringP("dir", "d", "goat_inputs", "directory containing the run manifest")
	statusCmd.Flags().BoolP("watch", "w", false, "poll until all jobs leave the queue")
	statusCmd.Flags().Duration("interval", 30*time.Second, "polling interval with --watch")
}

func runStatus(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")

	manifest, err := report.Load(dir)
	if err != nil {
		return fmt.Errorf("failed to load run manifest from %s: %w", dir, err)
	}
	if len(manifest.JobIDs) == 0 {
		logger.Info("No job ids recorded; run goatgen submit first")
		return nil
	}

	slurm := scheduler.New()

	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		active, err := printStatus(slurm, manifest.JobIDs)
		if err != nil {
			return err
		}
		logger.Infof("%d of %d job(s) still in queue", active, len(manifest.JobIDs))
		return nil
	}

	interval, _ := cmd.Flags().GetDuration("interval")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		active, err := printStatus(slurm, manifest.JobIDs)
		if err != nil {
			return err
		}
		if active == 0 {
			logger.Success("All jobs have left the queue")
			return nil
		}
		spin := logger.NewSpinner(fmt.Sprintf("%d of %d job(s) still in queue; next check in %s",
			active, len(manifest.JobIDs), interval))
		spin.Start()

		select {
		case <-ticker.C:
			spin.Stop()
		case <-sig:
			spin.Stop()
			logger.Info("Stopped watching")
			return nil
		}
	}
}

// printStatus queries squeue once and prints one line per job, returning the
// number of jobs still pending or running
func printStatus(slurm *scheduler.Slurm, jobIDs []string) (int, error) {
	status, err := slurm.Stat(jobIDs)
	if err != nil {
		return 0, err
	}

	active := 0
	for _, id := range jobIDs {
		if status[id] {
			logger.Progressf("job %s: in queue", id)
			active++
		} else {
			logger.Successf("job %s: done", id)
		}
	}
	return active, nil
}
