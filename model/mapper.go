package model

import (
	"fmt"
	"strings"
)

// fieldMapping resolves one canonical field from a list of accepted aliases,
// checked in priority order, with a fixed default when nothing matches.
type fieldMapping struct {
	canonical string
	aliases   []string
	isList    bool
	defString string
	defList   []string
}

// fieldMappings is the full alias table. Order inside each alias list
// matters: the first key present in the input wins.
var fieldMappings = []fieldMapping{
	{canonical: "name", aliases: []string{"name", "product_name", "title", "product_title"}, defString: "Product"},
	{canonical: "product_type", aliases: []string{"product_type", "concentration", "type", "version", "strength", "potency", "formula"}, defString: "Standard"},
	{canonical: "target_users", aliases: []string{"target_users", "skin_type", "skin_types", "user_type", "target_audience", "suitable_for", "for"}, isList: true, defList: []string{"All"}},
	{canonical: "key_features", aliases: []string{"key_features", "key_ingredients", "ingredients", "features", "active_ingredients"}, isList: true, defList: []string{"Premium ingredients"}},
	{canonical: "benefits", aliases: []string{"benefits", "advantages", "key_benefits", "pros"}, isList: true, defList: []string{"Quality product"}},
	{canonical: "how_to_use", aliases: []string{"how_to_use", "usage", "instructions", "how_to", "directions"}, defString: "Use as directed"},
	{canonical: "considerations", aliases: []string{"considerations", "side_effects", "warnings", "cautions", "notes", "limitations"}, defString: "None known"},
	{canonical: "price", aliases: []string{"price", "cost", "pricing", "amount"}, defString: "Contact for pricing"},
}

// MapFields normalizes an arbitrary string-keyed product object into a
// complete ProductRecord. Unknown keys are ignored, missing fields get
// documented defaults, and string values for list fields are comma-split.
// It never fails, and mapping an already-canonical record is a no-op.
func MapFields(data map[string]any) ProductRecord {
	resolved := make(map[string]any, len(fieldMappings))
	for _, fm := range fieldMappings {
		var value any
		for _, alias := range fm.aliases {
			if v, ok := data[alias]; ok && !isEmptyValue(v) {
				value = v
				break
			}
		}
		if value == nil {
			if fm.isList {
				resolved[fm.canonical] = append([]string(nil), fm.defList...)
			} else {
				resolved[fm.canonical] = fm.defString
			}
			continue
		}
		// A value can still clean down to nothing (whitespace, bare
		// commas, unusable items); the default applies then too.
		if fm.isList {
			list := toStringList(value)
			if len(list) == 0 {
				list = append([]string(nil), fm.defList...)
			}
			resolved[fm.canonical] = list
		} else {
			s := toString(value)
			if s == "" {
				s = fm.defString
			}
			resolved[fm.canonical] = s
		}
	}

	return ProductRecord{
		Name:           resolved["name"].(string),
		ProductType:    resolved["product_type"].(string),
		TargetUsers:    resolved["target_users"].([]string),
		KeyFeatures:    resolved["key_features"].([]string),
		Benefits:       resolved["benefits"].([]string),
		HowToUse:       resolved["how_to_use"].(string),
		Considerations: resolved["considerations"].(string),
		Price:          resolved["price"].(string),
	}
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	}
	return false
}

func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []string, []any:
		return strings.Join(toStringList(v), ", ")
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// toStringList accepts a list or a comma-separated string and returns a
// clean string slice with blanks removed.
func toStringList(v any) []string {
	var out []string
	appendClean := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	switch t := v.(type) {
	case []string:
		for _, s := range t {
			appendClean(s)
		}
	case []any:
		for _, item := range t {
			if item == nil {
				continue
			}
			appendClean(fmt.Sprint(item))
		}
	case string:
		for _, s := range strings.Split(t, ",") {
			appendClean(s)
		}
	}
	return out
}
