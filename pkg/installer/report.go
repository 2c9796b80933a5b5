package installer

import (
	"fmt"
	"strings"
	"time"

	"github.com/f-s-p/volinstall/pkg/bundle"
)

// Result records the outcome of one bundle installation.
type Result struct {
	Bundle   bundle.Bundle
	Output   string
	Err      error
	Duration time.Duration
	Skipped  bool // set for dry runs
}

// Report aggregates the outcome of a full install run.
type Report struct {
	RunID    string // uuid for correlating output
	Volume   string
	Target   string
	Started  time.Time
	Duration time.Duration
	Results  []Result
}

// Attempted returns the number of installer invocations (or dry-run skips).
func (r *Report) Attempted() int {
	return len(r.Results)
}

// Failed returns the results whose installation failed.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err returns an aggregated error covering every failed bundle, or nil when
// all installs succeeded. Callers honoring the legacy exit behavior ignore
// this value.
func (r *Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}

	names := make([]string, len(failed))
	for i, res := range failed {
		names[i] = res.Bundle.Name
	}
	return fmt.Errorf("%d of %d bundle(s) failed to install: %s",
		len(failed), len(r.Results), strings.Join(names, ", "))
}
