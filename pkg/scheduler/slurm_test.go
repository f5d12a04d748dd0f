package scheduler

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func fakeSlurm(runner func(name string, args ...string) (string, error)) *Slurm {
	return &Slurm{MaxRetries: 2, RetryDelay: time.Millisecond, runner: runner}
}

func TestParseJobID(t *testing.T) {
	id, err := ParseJobID("Submitted batch job 49229449\n")
	if err != nil {
		t.Fatalf("ParseJobID failed: %v", err)
	}
	if id != "49229449" {
		t.Errorf("id = %q, expected 49229449", id)
	}
}

func TestParseJobIDMissing(t *testing.T) {
	_, err := ParseJobID("sbatch: error: invalid partition\n")
	if err == nil {
		t.Fatal("expected error for output without a job id")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if !strings.Contains(parseErr.Output, "invalid partition") {
		t.Errorf("ParseError should carry the raw output, got %q", parseErr.Output)
	}
}

func TestSubmitRetries(t *testing.T) {
	attempts := 0
	s := fakeSlurm(func(name string, args ...string) (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("scheduler unreachable")
		}
		return "Submitted batch job 100", nil
	})

	id, err := s.Submit("run_mol_goat.sh")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if id != "100" {
		t.Errorf("id = %q, expected 100", id)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, expected 3", attempts)
	}
}

func TestSubmitGivesUp(t *testing.T) {
	attempts := 0
	s := fakeSlurm(func(name string, args ...string) (string, error) {
		attempts++
		return "some error text", errors.New("sbatch: command not found")
	})

	if _, err := s.Submit("run_mol_goat.sh"); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if attempts != 3 { // 1 initial + MaxRetries
		t.Errorf("attempts = %d, expected 3", attempts)
	}
}

func TestSubmitAllContinuesAfterFailure(t *testing.T) {
	s := fakeSlurm(func(name string, args ...string) (string, error) {
		script := args[0]
		if script == "run_b.sh" {
			return "", errors.New("rejected")
		}
		return fmt.Sprintf("Submitted batch job %d", len(script)), nil
	})
	s.MaxRetries = 0

	results := s.SubmitAll([]string{"run_a.sh", "run_b.sh", "run_c.sh"})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[1].Err == nil {
		t.Error("second submission should have failed")
	}
	if results[2].Err != nil {
		t.Errorf("third submission should still be attempted, got %v", results[2].Err)
	}

	jobIDs, failed := Summarize(results)
	if len(jobIDs) != 2 {
		t.Errorf("expected 2 job ids, got %v", jobIDs)
	}
	if len(failed) != 1 || failed[0].Script != "run_b.sh" {
		t.Errorf("expected run_b.sh to fail, got %v", failed)
	}
}

func TestParseSqueue(t *testing.T) {
	out := `             JOBID PARTITION     NAME     USER ST       TIME  NODES NODELIST(REASON)
          49229449      long pep1_goa    alice  R    1:23:45      1 node001
          49229450      long pep2_goa    alice PD       0:00      1 (Priority)
          49229452      long pep4_goa    alice CG       2:00      1 node003
`
	status := parseSqueue(strings.NewReader(out), []string{"49229449", "49229450", "49229451", "49229452"})

	tests := map[string]bool{
		"49229449": true,  // running
		"49229450": true,  // pending
		"49229451": false, // not in queue
		"49229452": false, // completing, no longer active
	}
	for id, expected := range tests {
		if status[id] != expected {
			t.Errorf("job %s active = %t, expected %t", id, status[id], expected)
		}
	}
}

func TestCancelNoJobs(t *testing.T) {
	called := false
	s := fakeSlurm(func(name string, args ...string) (string, error) {
		called = true
		return "", nil
	})
	if err := s.Cancel(nil); err != nil {
		t.Fatalf("Cancel(nil) failed: %v", err)
	}
	if called {
		t.Error("scancel should not run for an empty id list")
	}
}
