// Package scheduler submits generated job scripts to SLURM and tracks their
// queue status. All interaction goes through the sbatch, squeue, and scancel
// command-line tools.
package scheduler

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

// jobIDRe matches the sbatch success response, e.g.
// "Submitted batch job 49229449"
var jobIDRe = regexp.MustCompile(`Submitted batch job (\d+)`)

// ParseError reports an sbatch response that did not contain a job id
type ParseError struct {
	Output string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no job id in sbatch output: %q", e.Output)
}

// ParseJobID extracts the numeric job identifier from sbatch output. It
// returns a *ParseError when the expected pattern is absent; the output is
// never silently treated as an empty id.
func ParseJobID(out string) (string, error) {
	m := jobIDRe.FindStringSubmatch(out)
	if m == nil {
		return "", &ParseError{Output: strings.TrimSpace(out)}
	}
	return m[1], nil
}

// Slurm drives the SLURM command-line tools. The zero value is not usable;
// use New.
type Slurm struct {
	// MaxRetries bounds the resubmission attempts when sbatch itself
	// fails (scheduler briefly unreachable). Retries back off
	// exponentially starting at RetryDelay.
	MaxRetries int
	RetryDelay time.Duration

	// runner executes a command and returns its combined output;
	// replaceable in tests
	runner func(name string, args ...string) (string, error)
}

// New returns a Slurm handle with default retry behavior
func New() *Slurm {
	return &Slurm{
		MaxRetries: 5,
		RetryDelay: time.Second,
		runner: func(name string, args ...string) (string, error) {
			out, err := exec.Command(name, args...).CombinedOutput()
			return string(out), err
		},
	}
}

// Submit submits one job script via sbatch and returns the assigned job id.
// Transient sbatch failures are retried with exponential backoff up to
// MaxRetries before giving up.
func (s *Slurm) Submit(script string) (string, error) {
	delay := s.RetryDelay
	var (
		out string
		err error
	)
	for attempt := 0; ; attempt++ {
		out, err = s.runner("sbatch", script)
		if err == nil {
			break
		}
		if attempt >= s.MaxRetries {
			return "", fmt.Errorf("sbatch %s failed after %d attempts: %w: %s",
				script, attempt+1, err, strings.TrimSpace(out))
		}
		time.Sleep(delay)
		delay *= 2
	}
	return ParseJobID(out)
}

// Result is the outcome of one submission attempt in a batch
type Result struct {
	Script string
	JobID  string
	Err    error
}

// SubmitAll submits every script in order. A failed submission is recorded
// and the remaining scripts are still attempted; the batch never aborts on
// one failure.
func (s *Slurm) SubmitAll(scripts []string) []Result {
	results := make([]Result, 0, len(scripts))
	for _, script := range scripts {
		jobID, err := s.Submit(script)
		results = append(results, Result{Script: script, JobID: jobID, Err: err})
	}
	return results
}

// Summarize splits batch results into successfully assigned job ids and
// failed scripts
func Summarize(results []Result) (jobIDs []string, failed []Result) {
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
			continue
		}
		jobIDs = append(jobIDs, r.JobID)
	}
	return jobIDs, failed
}

// Stat returns a map from job id to whether the job is still pending,
// queued, or running according to squeue. Ids absent from squeue output map
// to false.
func (s *Slurm) Stat(jobIDs []string) (map[string]bool, error) {
	out, err := s.runner("squeue", "-u", os.Getenv("USER"))
	if err != nil {
		return nil, fmt.Errorf("squeue failed: %w", err)
	}
	return parseSqueue(strings.NewReader(out), jobIDs), nil
}

// parseSqueue scans squeue output for the given job ids. Jobs in PD
// (pending), R (running), or Q states count as active.
func parseSqueue(r io.Reader, jobIDs []string) map[string]bool {
	status := make(map[string]bool, len(jobIDs))
	for _, id := range jobIDs {
		status[id] = false
	}

	scanner := bufio.NewScanner(r)
	header := true
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "JOBID") {
			header = false
			continue
		}
		if header {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}
		if _, ok := status[fields[0]]; ok {
			if strings.Contains("PDQR", fields[4]) {
				status[fields[0]] = true
			}
		}
	}
	return status
}

// Cancel cancels the given jobs via scancel
func (s *Slurm) Cancel(jobIDs []string) error {
	if len(jobIDs) == 0 {
		return nil
	}
	out, err := s.runner("scancel", jobIDs...)
	if err != nil {
		return fmt.Errorf("scancel failed: %w: %s", err, strings.TrimSpace(out))
	}
	return nil
}
