package model

import "strings"

// ProductRecord is the canonical product shape that flows through the whole
// pipeline. All content generation is based on this record.
type ProductRecord struct {
	Name           string   `json:"name"`
	ProductType    string   `json:"product_type"`
	TargetUsers    []string `json:"target_users"`
	KeyFeatures    []string `json:"key_features"`
	Benefits       []string `json:"benefits"`
	HowToUse       string   `json:"how_to_use"`
	Considerations string   `json:"considerations"`
	Price          string   `json:"price"`
}

// Map returns the record as a generic mapping, the shape used by page
// fragments and the output documents.
func (p ProductRecord) Map() map[string]any {
	return map[string]any{
		"name":           p.Name,
		"product_type":   p.ProductType,
		"target_users":   p.TargetUsers,
		"key_features":   p.KeyFeatures,
		"benefits":       p.Benefits,
		"how_to_use":     p.HowToUse,
		"considerations": p.Considerations,
		"price":          p.Price,
	}
}

// Category classifies a generated user question.
type Category string

const (
	CategoryInformational Category = "Informational"
	CategorySafety        Category = "Safety"
	CategoryUsage         Category = "Usage"
	CategoryPurchase      Category = "Purchase"
	CategoryComparison    Category = "Comparison"
)

// Categories is the fixed vocabulary, in display order.
var Categories = []Category{
	CategoryInformational,
	CategorySafety,
	CategoryUsage,
	CategoryPurchase,
	CategoryComparison,
}

// ParseCategory maps free-form category text onto the vocabulary. Unknown
// values fall back to Informational.
func ParseCategory(s string) Category {
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return CategoryInformational
}

// Question is a single categorized user question.
type Question struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Text     string   `json:"question"`
}

// NormalizeQuestion produces the dedup key for a question: lowercase,
// collapsed whitespace, trailing question mark stripped.
func NormalizeQuestion(text string) string {
	s := strings.Join(strings.Fields(text), " ")
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.TrimRight(s, "?")
}
