package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"product_content_pipeline/model"
	"product_content_pipeline/templates"
)

// Step names the stages of a run. A run moves strictly forward:
// parse -> questions -> generating -> validate -> completed | failed.
type Step string

const (
	StepInitialized Step = "initialized"
	StepParsed      Step = "parsed"
	StepQuestions   Step = "questions_generated"
	StepGenerating  Step = "generating"
	StepValidated   Step = "validated"
	StepCompleted   Step = "completed"
	StepFailed      Step = "failed"
)

// WorkflowState is the single mutable record of one run. It is owned by the
// Driver; generation steps receive immutable snapshots and hand back deltas
// that the driver merges after each step settles.
type WorkflowState struct {
	RunID string         `json:"run_id"`
	Input map[string]any `json:"input"`

	Record    model.ProductRecord `json:"product_model"`
	Questions []model.Question    `json:"questions"`

	FAQ        templates.Fragment `json:"faq_content,omitempty"`
	Product    templates.Fragment `json:"product_content,omitempty"`
	Comparison templates.Fragment `json:"comparison_content,omitempty"`

	OutputFiles []string `json:"output_files"`
	Errors      []string `json:"errors"`
	Logs        []string `json:"logs"`
	Step        Step     `json:"current_step"`
}

func newState(input map[string]any) *WorkflowState {
	s := &WorkflowState{
		RunID: uuid.NewString(),
		Input: input,
		Step:  StepInitialized,
	}
	s.logf("workflow initialized")
	return s
}

func (s *WorkflowState) logf(format string, args ...any) {
	s.Logs = append(s.Logs, fmt.Sprintf("%s - %s", time.Now().Format(time.RFC3339), fmt.Sprintf(format, args...)))
}

// fail records the errors and moves the run to its terminal failed state.
func (s *WorkflowState) fail(errs ...string) {
	s.Errors = append(s.Errors, errs...)
	s.Step = StepFailed
	s.logf("run failed at step with %d error(s)", len(s.Errors))
}

// Failed reports whether the run ended in the failed state.
func (s *WorkflowState) Failed() bool {
	return s.Step == StepFailed
}
