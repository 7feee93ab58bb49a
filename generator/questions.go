package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"product_content_pipeline/model"
)

const (
	// MinQuestions is the contract: a batch is only accepted at or above
	// this size after deduplication.
	MinQuestions = 15
	// askQuestions is how many we request per round, leaving headroom for
	// duplicates and parse drops.
	askQuestions = 18
	// maxExtraRounds bounds the regeneration loop.
	maxExtraRounds = 3
)

// QuestionGenerator produces the categorized question batch that seeds the
// FAQ page.
type QuestionGenerator struct {
	gw  *Gateway
	log *zap.Logger
}

func NewQuestionGenerator(gw *Gateway, log *zap.Logger) *QuestionGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuestionGenerator{gw: gw, log: log}
}

// Generate returns at least MinQuestions deduplicated questions. When a
// round comes back short or duplicate-heavy it issues corrective rounds, up
// to maxExtraRounds, then fails with ErrShortfall.
func (g *QuestionGenerator) Generate(ctx context.Context, p model.ProductRecord) ([]model.Question, error) {
	raw, err := g.gw.Generate(ctx, BuildQuestionsPrompt(p, askQuestions))
	if err != nil {
		return nil, fmt.Errorf("question generation: %w", err)
	}

	seen := make(map[string]bool)
	questions := appendParsed(nil, seen, raw)
	g.log.Debug("initial question round", zap.Int("unique", len(questions)))

	for round := 0; len(questions) < MinQuestions && round < maxExtraRounds; round++ {
		needed := MinQuestions - len(questions)
		g.log.Info("question shortfall, regenerating",
			zap.Int("round", round+1),
			zap.Int("have", len(questions)),
			zap.Int("needed", needed))

		raw, err = g.gw.Generate(ctx, BuildMoreQuestionsPrompt(p, questions, needed+3))
		if err != nil {
			return nil, fmt.Errorf("question regeneration: %w", err)
		}
		questions = appendParsed(questions, seen, raw)
	}

	if len(questions) < MinQuestions {
		return nil, fmt.Errorf("%w: %d unique questions after %d extra rounds",
			ErrShortfall, len(questions), maxExtraRounds)
	}
	return questions, nil
}

// appendParsed parses one model response and appends the questions whose
// normalized text has not been seen yet. Unparseable responses contribute
// nothing; the shortfall check decides whether that is fatal.
func appendParsed(questions []model.Question, seen map[string]bool, raw string) []model.Question {
	payload, err := ExtractJSON(raw)
	if err != nil {
		return questions
	}
	var items []struct {
		Category string `json:"category"`
		Question string `json:"question"`
	}
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return questions
	}

	for _, item := range items {
		text := strings.TrimSpace(item.Question)
		if text == "" {
			continue
		}
		if !strings.HasSuffix(text, "?") {
			text += "?"
		}
		key := model.NormalizeQuestion(text)
		if seen[key] {
			continue
		}
		seen[key] = true
		questions = append(questions, model.Question{
			ID:       fmt.Sprintf("q%d", len(questions)+1),
			Category: model.ParseCategory(item.Category),
			Text:     text,
		})
	}
	return questions
}
