package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product_content_pipeline/model"
)

func sampleProduct() model.ProductRecord {
	return model.ProductRecord{
		Name:           "GlowBoost Vitamin C Serum",
		ProductType:    "10% Vitamin C",
		TargetUsers:    []string{"Oily", "Combination"},
		KeyFeatures:    []string{"Vitamin C", "Hyaluronic Acid"},
		Benefits:       []string{"Brightening", "Fades dark spots"},
		HowToUse:       "Apply 2-3 drops in the morning before sunscreen",
		Considerations: "Mild tingling for sensitive skin",
		Price:          "₹699",
	}
}

func TestBenefits(t *testing.T) {
	out := Benefits(sampleProduct())

	assert.Equal(t, []string{"Brightening", "Fades dark spots"}, out["primary_benefits"])
	assert.Equal(t, 2, out["total_benefits"])

	detailed := out["detailed_benefits"].([]map[string]string)
	require.Len(t, detailed, 2)
	assert.Equal(t, "Brightening", detailed[0]["benefit"])
	assert.NotEmpty(t, detailed[0]["description"])

	categories := out["benefit_categories"].(map[string][]string)
	assert.ElementsMatch(t, []string{"Brightening", "Fades dark spots"}, categories["appearance"])
}

func TestBenefitsDoesNotMutateInput(t *testing.T) {
	p := sampleProduct()
	out := Benefits(p)
	out["primary_benefits"].([]string)[0] = "changed"
	assert.Equal(t, "Brightening", p.Benefits[0])
}

func TestUsage(t *testing.T) {
	out := Usage(sampleProduct())

	steps := out["steps"].([]map[string]any)
	require.GreaterOrEqual(t, len(steps), 3)
	assert.Equal(t, "Cleanse", steps[0]["action"])
	assert.Equal(t, "Protect", steps[len(steps)-1]["action"], "sunscreen mention adds a protect step")

	assert.Equal(t, "Once daily (Morning)", out["frequency"])
	assert.Equal(t, "Morning", out["best_time"])

	tips := out["tips"].([]string)
	assert.Contains(t, tips, "Patch test recommended before first use")

	warnings := out["warnings"].([]string)
	assert.Contains(t, warnings, "May increase sun sensitivity; always use sunscreen")
}

func TestUsageGenericInstructions(t *testing.T) {
	p := sampleProduct()
	p.HowToUse = "Use as directed"
	p.KeyFeatures = []string{"Shea Butter"}
	p.TargetUsers = []string{"All"}
	p.Considerations = "None known"

	out := Usage(p)
	steps := out["steps"].([]map[string]any)
	require.Len(t, steps, 2)
	assert.Equal(t, "As directed", out["frequency"])
}

func TestIngredients(t *testing.T) {
	out := Ingredients(sampleProduct())

	assert.Equal(t, []string{"Vitamin C", "Hyaluronic Acid"}, out["active_ingredients"])
	assert.Equal(t, "Vitamin C", out["highlight_ingredient"])
	assert.Equal(t, 2, out["ingredient_count"])

	details := out["ingredient_details"].([]map[string]any)
	require.Len(t, details, 2)
	assert.Equal(t, "Active", details[0]["type"])
}

func TestIngredientsUnknownFeature(t *testing.T) {
	p := sampleProduct()
	p.KeyFeatures = []string{"Mystery Extract"}
	out := Ingredients(p)

	assert.Empty(t, out["active_ingredients"])
	assert.Equal(t, "Mystery Extract", out["highlight_ingredient"])
	details := out["ingredient_details"].([]map[string]any)
	require.Len(t, details, 1)
	assert.Equal(t, "Supporting", details[0]["type"])
}

func TestSafety(t *testing.T) {
	out := Safety(sampleProduct())

	sideEffects := out["side_effects"].([]string)
	assert.Contains(t, sideEffects, "Mild tingling for sensitive skin")

	precautions := out["precautions"].([]string)
	assert.Contains(t, precautions, "Perform a patch test before first use")

	suitability := out["suitability"].(map[string]any)
	assert.Equal(t, []string{"Oily", "Combination"}, suitability["suitable_for"])
}

func TestSafetyNoneKnown(t *testing.T) {
	p := sampleProduct()
	p.Considerations = "None known"
	out := Safety(p)
	assert.Empty(t, out["side_effects"])
}

func TestCompareFeatures(t *testing.T) {
	a := sampleProduct()
	b := sampleProduct()
	b.Name = "Rival Serum"
	b.KeyFeatures = []string{"Vitamin C", "Niacinamide"}

	out := CompareFeatures(a, b)
	assert.Equal(t, []string{"Vitamin C"}, out["common"])
	assert.Equal(t, []string{"Hyaluronic Acid"}, out["unique_to_product_a"])
	assert.Equal(t, []string{"Niacinamide"}, out["unique_to_product_b"])
}

func TestCompareBenefitsCaseInsensitive(t *testing.T) {
	a := sampleProduct()
	b := sampleProduct()
	b.Benefits = []string{"brightening", "Hydration"}

	out := CompareBenefits(a, b)
	assert.Equal(t, []string{"Brightening"}, out["common"])
	assert.Equal(t, []string{"Fades dark spots"}, out["unique_to_product_a"])
	assert.Equal(t, []string{"Hydration"}, out["unique_to_product_b"])
}

func TestPricing(t *testing.T) {
	a := sampleProduct()
	b := sampleProduct()
	b.Name = "Rival Serum"
	b.Price = "₹899"

	out := Pricing(a, b)
	assert.Equal(t, a.Name, out["cheaper_product"])
	assert.Equal(t, 200.0, out["difference"])
	assert.Equal(t, "₹699", out["price_a_raw"])
}
