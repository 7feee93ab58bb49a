package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"product_content_pipeline/blocks"
	"product_content_pipeline/model"
	"product_content_pipeline/templates"
)

// faqTarget is how many of the generated questions make it onto the page.
const faqTarget = 8

// FAQGenerator builds the FAQ page fragment: a diverse selection from the
// question batch, answered in a single gateway call.
type FAQGenerator struct {
	gw  *Gateway
	log *zap.Logger
}

func NewFAQGenerator(gw *Gateway, log *zap.Logger) *FAQGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	return &FAQGenerator{gw: gw, log: log}
}

func (g *FAQGenerator) Generate(ctx context.Context, p model.ProductRecord, questions []model.Question) (templates.Fragment, error) {
	if len(questions) < templates.MinFAQItems {
		return nil, fmt.Errorf("faq: need at least %d questions, got %d", templates.MinFAQItems, len(questions))
	}

	selected := selectQuestions(questions, faqTarget)
	g.log.Debug("selected faq questions", zap.Int("count", len(selected)))

	raw, err := g.gw.Generate(ctx, BuildAnswersPrompt(p, selected))
	if err != nil {
		return nil, fmt.Errorf("faq answers: %w", err)
	}
	answers, err := parseAnswers(raw)
	if err != nil {
		return nil, fmt.Errorf("faq answers: %w", err)
	}

	items := make([]map[string]any, 0, len(selected))
	summary := make(map[string]int)
	for _, q := range selected {
		answer := strings.TrimSpace(answers[q.ID])
		if answer == "" {
			return nil, fmt.Errorf("faq answers: model returned no answer for %s (%q)", q.ID, q.Text)
		}
		items = append(items, map[string]any{
			"id":       q.ID,
			"category": string(q.Category),
			"question": q.Text,
			"answer":   answer,
		})
		summary[string(q.Category)]++
	}

	return templates.Fragment{
		"page_type":        templates.PageFAQ,
		"product_name":     p.Name,
		"questions":        items,
		"total_questions":  len(items),
		"category_summary": summary,
		"blocks": map[string]any{
			blocks.BenefitsBlock: blocks.Benefits(p),
			blocks.UsageBlock:    blocks.Usage(p),
			blocks.SafetyBlock:   blocks.Safety(p),
		},
	}, nil
}

// selectQuestions picks up to target questions, taking the first question of
// each category before filling the rest in batch order. The batch is already
// deduplicated, so diversity is the only concern here.
func selectQuestions(questions []model.Question, target int) []model.Question {
	if target > len(questions) {
		target = len(questions)
	}
	picked := make(map[string]bool, target)
	var selected []model.Question

	for _, cat := range model.Categories {
		for _, q := range questions {
			if q.Category == cat {
				selected = append(selected, q)
				picked[q.ID] = true
				break
			}
		}
	}
	for _, q := range questions {
		if len(selected) >= target {
			break
		}
		if !picked[q.ID] {
			selected = append(selected, q)
			picked[q.ID] = true
		}
	}
	if len(selected) > target {
		selected = selected[:target]
	}
	return selected
}

func parseAnswers(raw string) (map[string]string, error) {
	payload, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}
	var items []struct {
		ID     string `json:"id"`
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, fmt.Errorf("unexpected answer payload: %w", err)
	}
	answers := make(map[string]string, len(items))
	for _, item := range items {
		answers[item.ID] = item.Answer
	}
	return answers, nil
}
