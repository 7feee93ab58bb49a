// Package blocks holds the pure logic blocks of the pipeline. Every block is
// a total function from product data to a structured fragment; none of them
// call the LLM or perform I/O, so the generators can invoke them in any
// order.
package blocks

import (
	"fmt"
	"strings"

	"product_content_pipeline/model"
)

// Block names as referenced by template manifests and output metadata.
const (
	BenefitsBlock        = "benefits_block"
	UsageBlock           = "usage_block"
	IngredientsBlock     = "ingredients_block"
	SafetyBlock          = "safety_block"
	CompareFeaturesBlock = "compare_ingredients_block"
	CompareBenefitsBlock = "compare_benefits_block"
	PricingBlock         = "pricing_block"
)

// Benefits organizes the product benefits into primary list, expanded
// descriptions and rough categories.
func Benefits(p model.ProductRecord) map[string]any {
	primary := append([]string(nil), p.Benefits...)

	detailed := make([]map[string]string, 0, len(primary))
	for _, b := range primary {
		detailed = append(detailed, map[string]string{
			"benefit":     b,
			"description": expandBenefit(b, p),
		})
	}

	return map[string]any{
		"primary_benefits":   primary,
		"detailed_benefits":  detailed,
		"benefit_categories": categorizeBenefits(primary),
		"total_benefits":     len(primary),
	}
}

func expandBenefit(benefit string, p model.ProductRecord) string {
	b := strings.ToLower(benefit)
	switch {
	case strings.Contains(b, "brightening"):
		return fmt.Sprintf("The %s in %s helps brighten skin tone and enhance natural radiance.", p.ProductType, p.Name)
	case strings.Contains(b, "dark spot"), strings.Contains(b, "fades"):
		return fmt.Sprintf("%s works to fade dark spots and hyperpigmentation over consistent use.", p.Name)
	case strings.Contains(b, "hydrat"):
		return fmt.Sprintf("%s provides deep hydration for plump, healthy skin.", p.Name)
	case strings.Contains(b, "anti-aging"), strings.Contains(b, "wrinkle"):
		return fmt.Sprintf("%s helps reduce fine lines and wrinkles with its potent formula.", p.Name)
	}
	return fmt.Sprintf("%s delivers %s benefits for improved skin health.", p.Name, b)
}

// benefitCategories is checked in order; the first matching bucket wins.
var benefitCategories = []struct {
	name  string
	words []string
}{
	{"appearance", []string{"brightening", "glow", "radiant", "dark spot", "fades", "tone"}},
	{"skin_health", []string{"hydrat", "moistur", "nourish", "soft", "smooth"}},
	{"protection", []string{"protect", "antioxidant", "uv", "barrier"}},
}

func categorizeBenefits(benefits []string) map[string][]string {
	categories := make(map[string][]string)
	for _, benefit := range benefits {
		b := strings.ToLower(benefit)
		matched := "other"
	scan:
		for _, cat := range benefitCategories {
			for _, w := range cat.words {
				if strings.Contains(b, w) {
					matched = cat.name
					break scan
				}
			}
		}
		categories[matched] = append(categories[matched], benefit)
	}
	return categories
}
