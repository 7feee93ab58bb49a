package blocks

import (
	"fmt"
	"strings"

	"product_content_pipeline/model"
)

type ingredientInfo struct {
	Type        string
	Function    string
	Description string
	Benefits    string
}

// ingredientKB is a small fixed knowledge base of common actives. Features
// not present here are reported as supporting ingredients.
var ingredientKB = map[string]ingredientInfo{
	"vitamin c": {
		Type: "Active", Function: "Antioxidant",
		Description: "A powerful antioxidant that brightens skin, evens tone, and protects against environmental damage.",
		Benefits:    "Brightening, anti-aging, antioxidant protection",
	},
	"hyaluronic acid": {
		Type: "Active", Function: "Humectant",
		Description: "A moisture-binding molecule that holds up to 1000x its weight in water for deep hydration.",
		Benefits:    "Hydration, plumping, smoothing",
	},
	"niacinamide": {
		Type: "Active", Function: "Vitamin B3",
		Description: "Helps minimize pores, even skin tone, and strengthen the skin barrier.",
		Benefits:    "Pore minimizing, brightening, barrier repair",
	},
	"retinol": {
		Type: "Active", Function: "Vitamin A derivative",
		Description: "Promotes cell turnover for smoother, younger-looking skin.",
		Benefits:    "Anti-aging, texture improvement, cell renewal",
	},
	"salicylic acid": {
		Type: "Active", Function: "BHA",
		Description: "Oil-soluble acid that penetrates pores to clear congestion and prevent breakouts.",
		Benefits:    "Exfoliation, acne control, pore clearing",
	},
	"glycolic acid": {
		Type: "Active", Function: "AHA",
		Description: "Water-soluble acid that exfoliates the skin surface for improved texture.",
		Benefits:    "Exfoliation, brightening, texture improvement",
	},
}

// Ingredients enriches the key feature list with details from the knowledge
// base and picks the highlight ingredient (first active, else first listed).
func Ingredients(p model.ProductRecord) map[string]any {
	details := make([]map[string]any, 0, len(p.KeyFeatures))
	var actives []string

	for _, name := range p.KeyFeatures {
		info, known := ingredientKB[strings.ToLower(strings.TrimSpace(name))]
		if !known {
			details = append(details, map[string]any{
				"name":        name,
				"type":        "Supporting",
				"function":    "Ingredient",
				"description": fmt.Sprintf("%s is part of the %s formula.", name, p.Name),
			})
			continue
		}
		details = append(details, map[string]any{
			"name":        name,
			"type":        info.Type,
			"function":    info.Function,
			"description": info.Description,
			"benefits":    info.Benefits,
		})
		actives = append(actives, name)
	}

	highlight := ""
	if len(actives) > 0 {
		highlight = actives[0]
	} else if len(p.KeyFeatures) > 0 {
		highlight = p.KeyFeatures[0]
	}

	return map[string]any{
		"active_ingredients":   actives,
		"ingredient_details":   details,
		"ingredient_count":     len(p.KeyFeatures),
		"highlight_ingredient": highlight,
	}
}
