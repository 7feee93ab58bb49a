package blocks

import (
	"strings"

	"product_content_pipeline/model"
)

// Safety builds structured safety information from the considerations field
// and the product characteristics.
func Safety(p model.ProductRecord) map[string]any {
	sideEffects := parseSideEffects(p.Considerations)

	return map[string]any{
		"side_effects":      sideEffects,
		"precautions":       safetyPrecautions(p),
		"suitability":       safetySuitability(p),
		"contraindications": safetyContraindications(p, sideEffects),
		"storage":           safetyStorage(p),
	}
}

func parseSideEffects(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" || strings.EqualFold(text, "None known") {
		return nil
	}
	var out []string
	for _, part := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ';' || r == '.' || r == ','
	}) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func safetyPrecautions(p model.ProductRecord) []string {
	precautions := []string{"Avoid direct contact with eyes"}
	features := strings.ToLower(strings.Join(p.KeyFeatures, " "))
	if strings.Contains(features, "vitamin c") || strings.Contains(features, "acid") || strings.Contains(features, "retinol") {
		precautions = append(precautions, "Use sunscreen during the day when using active ingredients")
	}
	if strings.Contains(strings.ToLower(p.Considerations), "sensitive") {
		precautions = append(precautions, "Perform a patch test before first use")
	}
	return precautions
}

func safetySuitability(p model.ProductRecord) map[string]any {
	return map[string]any{
		"suitable_for": append([]string(nil), p.TargetUsers...),
		"notes":        p.Considerations,
	}
}

func safetyContraindications(p model.ProductRecord, sideEffects []string) []string {
	var out []string
	if strings.Contains(strings.ToLower(p.Considerations), "sensitive") {
		out = append(out, "Those with very sensitive or compromised skin should consult a dermatologist")
	}
	if len(sideEffects) > 0 {
		out = append(out, "Discontinue use if irritation persists")
	}
	return out
}

func safetyStorage(p model.ProductRecord) []string {
	storage := []string{"Keep out of reach of children"}
	if strings.Contains(strings.ToLower(strings.Join(p.KeyFeatures, " ")), "vitamin c") {
		storage = append(storage, "Store away from direct sunlight to prevent oxidation")
	}
	return storage
}
