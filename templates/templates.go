// Package templates defines the page manifests and the strict validation
// gate. A fragment is accepted only when every required field and every
// required logic block is present and non-empty; there is no default
// substitution and no partial output.
package templates

import "fmt"

// Page type tags.
const (
	PageFAQ        = "faq"
	PageProduct    = "product"
	PageComparison = "comparison"
)

// Fragment is a generated content page: a field mapping tagged with a
// page_type discriminator and a blocks sub-mapping naming the logic block
// outputs it was built from.
type Fragment map[string]any

// PageType returns the page_type tag, or "" when missing.
func (f Fragment) PageType() string {
	s, _ := f["page_type"].(string)
	return s
}

// Blocks returns the logic block outputs attached to the fragment.
func (f Fragment) Blocks() map[string]any {
	b, _ := f["blocks"].(map[string]any)
	return b
}

// ValidationResult carries the outcome of validating one fragment. Errors
// lists every violation found in a single pass.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

func (r *ValidationResult) addError(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Manifest declares what a page type requires before it may be emitted.
type Manifest struct {
	PageType       string
	RequiredFields []string
	RequiredBlocks []string
	// check runs page-specific structural rules beyond field presence.
	check func(f Fragment, r *ValidationResult)
}

// MinFAQItems is the minimum number of answered questions on a FAQ page.
const MinFAQItems = 5

var manifests = map[string]Manifest{
	PageFAQ: {
		PageType:       PageFAQ,
		RequiredFields: []string{"product_name", "questions"},
		RequiredBlocks: []string{"benefits_block", "usage_block", "safety_block"},
		check:          checkFAQ,
	},
	PageProduct: {
		PageType:       PageProduct,
		RequiredFields: []string{"product"},
		RequiredBlocks: []string{"benefits_block", "usage_block", "ingredients_block", "safety_block"},
		check:          checkProduct,
	},
	PageComparison: {
		PageType:       PageComparison,
		RequiredFields: []string{"products", "comparison"},
		RequiredBlocks: []string{"compare_ingredients_block", "compare_benefits_block", "pricing_block"},
		check:          checkComparison,
	},
}

// ManifestFor returns the manifest for a page type tag.
func ManifestFor(pageType string) (Manifest, bool) {
	m, ok := manifests[pageType]
	return m, ok
}
