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

// ComparisonGenerator builds the comparison page fragment. The competitor
// is fabricated in one gateway call from the input product alone; no
// competitor lookup against any external source ever happens.
type ComparisonGenerator struct {
	gw  *Gateway
	log *zap.Logger
}

func NewComparisonGenerator(gw *Gateway, log *zap.Logger) *ComparisonGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	return &ComparisonGenerator{gw: gw, log: log}
}

func (g *ComparisonGenerator) Generate(ctx context.Context, p model.ProductRecord) (templates.Fragment, error) {
	raw, err := g.gw.Generate(ctx, BuildCompetitorPrompt(p))
	if err != nil {
		return nil, fmt.Errorf("competitor generation: %w", err)
	}
	competitor, err := parseCompetitor(raw, p)
	if err != nil {
		return nil, fmt.Errorf("competitor generation: %w", err)
	}
	g.log.Debug("fabricated competitor", zap.String("name", competitor.Name))

	compareFeatures := blocks.CompareFeatures(p, competitor)
	compareBenefits := blocks.CompareBenefits(p, competitor)
	pricing := blocks.Pricing(p, competitor)

	return templates.Fragment{
		"page_type": templates.PageComparison,
		"products": map[string]any{
			"product_a": p.Map(),
			"product_b": competitor.Map(),
		},
		"comparison": map[string]any{
			"ingredients": compareFeatures,
			"benefits":    compareBenefits,
			"price":       pricing,
			"suitability": map[string]any{
				"product_a_best_for": append([]string(nil), p.TargetUsers...),
				"product_b_best_for": append([]string(nil), competitor.TargetUsers...),
			},
		},
		"recommendation": buildRecommendation(p, competitor, pricing),
		"blocks": map[string]any{
			blocks.CompareFeaturesBlock: compareFeatures,
			blocks.CompareBenefitsBlock: compareBenefits,
			blocks.PricingBlock:         pricing,
		},
	}, nil
}

// parseCompetitor decodes the fabricated product through the same field
// mapper as user input, then rejects competitors that are not actually
// distinct from the input product.
func parseCompetitor(raw string, p model.ProductRecord) (model.ProductRecord, error) {
	payload, err := ExtractJSON(raw)
	if err != nil {
		return model.ProductRecord{}, err
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return model.ProductRecord{}, fmt.Errorf("unexpected competitor payload: %w", err)
	}
	competitor := model.MapFields(data)
	if strings.EqualFold(strings.TrimSpace(competitor.Name), strings.TrimSpace(p.Name)) {
		return model.ProductRecord{}, fmt.Errorf("competitor name %q matches input product", competitor.Name)
	}
	return competitor, nil
}

func buildRecommendation(a, b model.ProductRecord, pricing map[string]any) string {
	cheaper, _ := pricing["cheaper_product"].(string)
	if cheaper == "" {
		cheaper = a.Name
	}
	return fmt.Sprintf(
		"Choose %s for %s. Consider %s as an alternative in the same category. %s offers the better price.",
		a.Name, strings.ToLower(strings.Join(a.Benefits, " and ")), b.Name, cheaper)
}
