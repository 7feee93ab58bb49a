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

// ProductPageGenerator builds the product detail page fragment from the
// record, the logic blocks, and one gateway call for the marketing copy.
type ProductPageGenerator struct {
	gw  *Gateway
	log *zap.Logger
}

func NewProductPageGenerator(gw *Gateway, log *zap.Logger) *ProductPageGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductPageGenerator{gw: gw, log: log}
}

func (g *ProductPageGenerator) Generate(ctx context.Context, p model.ProductRecord) (templates.Fragment, error) {
	raw, err := g.gw.Generate(ctx, BuildProductCopyPrompt(p))
	if err != nil {
		return nil, fmt.Errorf("product copy: %w", err)
	}
	copyText, err := parseProductCopy(raw, p)
	if err != nil {
		return nil, fmt.Errorf("product copy: %w", err)
	}

	benefits := blocks.Benefits(p)
	usage := blocks.Usage(p)
	ingredients := blocks.Ingredients(p)
	safety := blocks.Safety(p)

	product := map[string]any{
		"name":               p.Name,
		"product_type":       p.ProductType,
		"tagline":            copyText.Tagline,
		"headline":           copyText.Headline,
		"description":        copyText.Description,
		"key_features":       append([]string(nil), p.KeyFeatures...),
		"benefits":           benefits,
		"ingredients":        ingredients,
		"how_to_use":         usage,
		"suitable_for":       append([]string(nil), p.TargetUsers...),
		"safety_information": safety,
		"price":              model.ParsePrice(p.Price).Map(),
	}

	return templates.Fragment{
		"page_type": templates.PageProduct,
		"product":   product,
		"blocks": map[string]any{
			blocks.BenefitsBlock:    benefits,
			blocks.UsageBlock:       usage,
			blocks.IngredientsBlock: ingredients,
			blocks.SafetyBlock:      safety,
		},
	}, nil
}

type productCopy struct {
	Tagline     string `json:"tagline"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
}

func parseProductCopy(raw string, p model.ProductRecord) (productCopy, error) {
	payload, err := ExtractJSON(raw)
	if err != nil {
		return productCopy{}, err
	}
	var c productCopy
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		return productCopy{}, fmt.Errorf("unexpected copy payload: %w", err)
	}
	if strings.TrimSpace(c.Headline) == "" {
		c.Headline = p.Name
	}
	if strings.TrimSpace(c.Description) == "" {
		return productCopy{}, fmt.Errorf("model returned no description for %s", p.Name)
	}
	return c, nil
}
