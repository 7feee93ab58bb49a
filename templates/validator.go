package templates

import "fmt"

// Validate checks a fragment against the manifest for its declared page
// type. All violations are reported together; a fragment with any violation
// is rejected outright.
func Validate(f Fragment) ValidationResult {
	r := ValidationResult{Valid: true}

	manifest, ok := manifests[f.PageType()]
	if !ok {
		r.addError("unknown page_type: %q", f.PageType())
		return r
	}

	for _, field := range manifest.RequiredFields {
		v, present := f[field]
		if !present {
			r.addError("%s: missing required field: %s", manifest.PageType, field)
		} else if isEmpty(v) {
			r.addError("%s: required field %q is empty", manifest.PageType, field)
		}
	}

	blocks := f.Blocks()
	for _, block := range manifest.RequiredBlocks {
		if v, present := blocks[block]; !present || isEmpty(v) {
			r.addError("%s: missing required logic block: %s", manifest.PageType, block)
		}
	}

	if manifest.check != nil {
		manifest.check(f, &r)
	}
	return r
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	case []map[string]any:
		return len(t) == 0
	case []map[string]string:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}

func checkFAQ(f Fragment, r *ValidationResult) {
	items := asMapList(f["questions"])
	if items == nil {
		if _, present := f["questions"]; present {
			r.addError("faq: questions must be a list of objects")
		}
		return
	}
	if len(items) < MinFAQItems {
		r.addError("faq: must have at least %d questions, got %d", MinFAQItems, len(items))
	}
	for i, q := range items {
		if s, _ := q["question"].(string); s == "" {
			r.addError("faq: question %d is missing question text", i+1)
		}
		if s, _ := q["answer"].(string); s == "" {
			r.addError("faq: question %d is missing answer", i+1)
		}
	}
}

func checkProduct(f Fragment, r *ValidationResult) {
	product, ok := f["product"].(map[string]any)
	if !ok {
		if _, present := f["product"]; present {
			r.addError("product: product must be an object")
		}
		return
	}
	if s, _ := product["name"].(string); s == "" {
		r.addError("product: product is missing name")
	}
}

// comparisonProductFields must be present on each side of a comparison.
// Product B is fabricated, but it still has to be fully structured.
var comparisonProductFields = []string{"name", "product_type", "key_features", "benefits", "price"}

func checkComparison(f Fragment, r *ValidationResult) {
	products, ok := f["products"].(map[string]any)
	if !ok {
		if _, present := f["products"]; present {
			r.addError("comparison: products must be an object")
		}
		return
	}
	for _, side := range []string{"product_a", "product_b"} {
		p, ok := products[side].(map[string]any)
		if !ok {
			r.addError("comparison: products must contain %q", side)
			continue
		}
		for _, field := range comparisonProductFields {
			if v, present := p[field]; !present || isEmpty(v) {
				r.addError("comparison: %s must have %q", side, field)
			}
		}
	}
	if comparison, ok := f["comparison"].(map[string]any); ok {
		for _, section := range []string{"ingredients", "benefits", "price"} {
			if v, present := comparison[section]; !present || isEmpty(v) {
				r.addError("comparison: comparison is missing section %q", section)
			}
		}
	}
}

// asMapList coerces a fragment field into a list of objects, accepting both
// []any (decoded JSON) and []map[string]any (built in process).
func asMapList(v any) []map[string]any {
	switch t := v.(type) {
	case []map[string]any:
		return t
	case []any:
		out := make([]map[string]any, 0, len(t))
		for _, item := range t {
			m, ok := item.(map[string]any)
			if !ok {
				return nil
			}
			out = append(out, m)
		}
		return out
	}
	return nil
}

// Describe returns a short human-readable summary of a manifest, used by
// logs and the server's template info endpoint.
func (m Manifest) Describe() string {
	return fmt.Sprintf("%s: %d required fields, %d required blocks",
		m.PageType, len(m.RequiredFields), len(m.RequiredBlocks))
}
