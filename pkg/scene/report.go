package scene

// StepResult records one control API call made by a Builder.
type StepResult struct {
	State   State  `json:"state"`
	Action  string `json:"action"`
	Target  string `json:"target,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Report is the outcome of a Build or Teardown run.
type Report struct {
	RunID string       `json:"runId"`
	Final State        `json:"final"`
	Steps []StepResult `json:"steps"`
}

// Succeeded counts successful steps.
func (r *Report) Succeeded() int {
	n := 0
	for _, s := range r.Steps {
		if s.Success {
			n++
		}
	}
	return n
}

// Failed counts failed steps.
func (r *Report) Failed() int {
	return len(r.Steps) - r.Succeeded()
}

// FailedSteps returns the steps that did not succeed.
func (r *Report) FailedSteps() []StepResult {
	var out []StepResult
	for _, s := range r.Steps {
		if !s.Success {
			out = append(out, s)
		}
	}
	return out
}
