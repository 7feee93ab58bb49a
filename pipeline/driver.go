// Package pipeline sequences a single content generation run: parse the
// input, generate questions, fan out the three page generators, gate the
// results through validation, and either emit all output files or fail the
// run as a whole.
package pipeline

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"product_content_pipeline/generator"
	"product_content_pipeline/model"
	"product_content_pipeline/templates"
)

// Driver wires the generation steps into the run state machine. It is
// stateless across runs; each Run gets a fresh WorkflowState.
type Driver struct {
	questions  *generator.QuestionGenerator
	faq        *generator.FAQGenerator
	product    *generator.ProductPageGenerator
	comparison *generator.ComparisonGenerator
	writer     *Writer
	log        *zap.Logger
}

func NewDriver(gw *generator.Gateway, writer *Writer, log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{
		questions:  generator.NewQuestionGenerator(gw, log.Named("questions")),
		faq:        generator.NewFAQGenerator(gw, log.Named("faq")),
		product:    generator.NewProductPageGenerator(gw, log.Named("product")),
		comparison: generator.NewComparisonGenerator(gw, log.Named("comparison")),
		writer:     writer,
		log:        log,
	}
}

// Run executes the full pipeline for one product object. The returned state
// is terminal: StepCompleted with all output files written, or StepFailed
// with the accumulated error list and no files written.
func (d *Driver) Run(ctx context.Context, input map[string]any) *WorkflowState {
	state := newState(input)

	// Parse. The field mapper cannot fail; it always yields a complete
	// record.
	state.Record = model.MapFields(input)
	state.Step = StepParsed
	state.logf("parsed product %q", state.Record.Name)
	d.log.Info("parsed product", zap.String("run_id", state.RunID), zap.String("name", state.Record.Name))

	// Questions. Key exhaustion or a shortfall ends the run here; no
	// partial generation is attempted.
	questions, err := d.questions.Generate(ctx, state.Record)
	if err != nil {
		state.fail(err.Error())
		return state
	}
	state.Questions = questions
	state.Step = StepQuestions
	state.logf("generated %d questions", len(questions))

	// Fan out the three page generators over immutable snapshots. The
	// first failure cancels the group context; completed sibling results
	// are discarded along with the run.
	state.Step = StepGenerating
	record := state.Record
	var faqFrag, productFrag, comparisonFrag templates.Fragment

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		frag, err := d.faq.Generate(gctx, record, questions)
		if err == nil {
			faqFrag = frag
		}
		return err
	})
	g.Go(func() error {
		frag, err := d.product.Generate(gctx, record)
		if err == nil {
			productFrag = frag
		}
		return err
	})
	g.Go(func() error {
		frag, err := d.comparison.Generate(gctx, record)
		if err == nil {
			comparisonFrag = frag
		}
		return err
	})
	if err := g.Wait(); err != nil {
		state.fail(err.Error())
		return state
	}
	state.FAQ = faqFrag
	state.Product = productFrag
	state.Comparison = comparisonFrag
	state.logf("all three page fragments generated")

	// Validate. All three fragments are checked and every violation is
	// reported together; one bad fragment fails the whole run.
	var violations []string
	for _, frag := range []templates.Fragment{faqFrag, productFrag, comparisonFrag} {
		if r := templates.Validate(frag); !r.Valid {
			violations = append(violations, r.Errors...)
		}
	}
	if len(violations) > 0 {
		d.log.Error("validation failed", zap.String("run_id", state.RunID), zap.Strings("violations", violations))
		state.fail(violations...)
		return state
	}
	state.Step = StepValidated
	state.logf("all fragments passed validation")

	// Output. Documents are rendered in memory first so a failed run
	// leaves no files behind.
	files, err := d.writer.Write(state)
	if err != nil {
		state.fail(err.Error())
		return state
	}
	state.OutputFiles = files
	state.Step = StepCompleted
	state.logf("wrote %d output files", len(files))
	d.log.Info("run completed", zap.String("run_id", state.RunID), zap.Strings("files", files))
	return state
}
