package blocks

import (
	"strings"

	"product_content_pipeline/model"
)

// Usage parses the usage instructions into application steps, frequency,
// best time of day, tips and warnings.
func Usage(p model.ProductRecord) map[string]any {
	text := p.HowToUse

	return map[string]any{
		"steps":            usageSteps(text),
		"frequency":        usageFrequency(text),
		"best_time":        usageBestTime(text),
		"tips":             usageTips(p),
		"warnings":         usageWarnings(p),
		"raw_instructions": text,
	}
}

func usageSteps(text string) []map[string]any {
	lower := strings.ToLower(text)
	var steps []map[string]any
	add := func(action, description string) {
		steps = append(steps, map[string]any{
			"step_number": len(steps) + 1,
			"action":      action,
			"description": description,
		})
	}

	if strings.Contains(lower, "drop") {
		add("Cleanse", "Start with a clean, dry face")
		add("Apply", text)
		add("Wait", "Allow the product to absorb for 1-2 minutes")
		if strings.Contains(lower, "sunscreen") {
			add("Protect", "Follow with sunscreen for daytime use")
		}
	} else {
		add("Prepare", "Cleanse and dry your face")
		add("Apply", text)
	}
	return steps
}

func usageFrequency(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "twice"), strings.Contains(lower, "2x"):
		return "Twice daily"
	case strings.Contains(lower, "morning") && (strings.Contains(lower, "night") || strings.Contains(lower, "evening")):
		return "Twice daily (AM & PM)"
	case strings.Contains(lower, "morning"):
		return "Once daily (Morning)"
	case strings.Contains(lower, "night"), strings.Contains(lower, "evening"):
		return "Once daily (Evening)"
	case strings.Contains(lower, "daily"):
		return "Daily"
	}
	return "As directed"
}

func usageBestTime(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "before bed"):
		return "Before bed"
	case strings.Contains(lower, "morning"):
		return "Morning"
	case strings.Contains(lower, "night"), strings.Contains(lower, "evening"):
		return "Evening"
	}
	return "Morning or Evening"
}

func usageTips(p model.ProductRecord) []string {
	var tips []string
	features := strings.ToLower(strings.Join(p.KeyFeatures, " "))
	users := strings.ToLower(strings.Join(p.TargetUsers, " "))

	if strings.Contains(features, "vitamin c") {
		tips = append(tips,
			"Store in a cool, dark place to maintain potency",
			"Can be layered under other serums and moisturizers")
	}
	if strings.Contains(features, "hyaluronic") {
		tips = append(tips, "Apply to slightly damp skin for best absorption")
	}
	if strings.Contains(users, "oily") {
		tips = append(tips, "May be used alone as a light hydrator for oily skin")
	}
	if strings.Contains(users, "sensitive") || strings.Contains(strings.ToLower(p.Considerations), "sensitive") {
		tips = append(tips, "Patch test recommended before first use")
	}
	tips = append(tips, "Consistency is key for best results")
	return tips
}

func usageWarnings(p model.ProductRecord) []string {
	var warnings []string
	if c := strings.TrimSpace(p.Considerations); c != "" && !strings.EqualFold(c, "None known") {
		warnings = append(warnings, c)
	}
	if strings.Contains(strings.ToLower(strings.Join(p.KeyFeatures, " ")), "vitamin c") {
		warnings = append(warnings, "May increase sun sensitivity; always use sunscreen")
	}
	return warnings
}
