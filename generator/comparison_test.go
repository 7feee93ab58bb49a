package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product_content_pipeline/templates"
)

const competitorJSON = `{
	"product_name": "ClearGlow Vitamin C Serum",
	"type": "15% Vitamin C",
	"skin_type": ["Oily"],
	"ingredients": ["Vitamin C", "Niacinamide"],
	"benefits": ["Brightening", "Oil control"],
	"usage": "Apply 2 drops at night",
	"side_effects": "Mild dryness",
	"price": "₹899"
}`

func TestComparisonHappyPath(t *testing.T) {
	llm := (&ScriptedLLM{}).Respond(competitorJSON)
	g := NewComparisonGenerator(newTestGateway(t, llm), nil)

	p := testProduct()
	frag, err := g.Generate(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 1, llm.Calls())

	assert.Equal(t, templates.PageComparison, frag.PageType())

	products := frag["products"].(map[string]any)
	a := products["product_a"].(map[string]any)
	b := products["product_b"].(map[string]any)
	assert.Equal(t, p.Name, a["name"])
	assert.Equal(t, "ClearGlow Vitamin C Serum", b["name"])

	comparison := frag["comparison"].(map[string]any)
	for _, section := range []string{"ingredients", "benefits", "price", "suitability"} {
		assert.Contains(t, comparison, section)
	}

	price := comparison["price"].(map[string]any)
	assert.Equal(t, p.Name, price["cheaper_product"], "₹699 beats ₹899")

	assert.NotEmpty(t, frag["recommendation"])

	result := templates.Validate(frag)
	assert.True(t, result.Valid, "errors: %v", result.Errors)
}

func TestComparisonCompetitorUsesFieldMapper(t *testing.T) {
	// Aliased keys and a missing price must map like any other input.
	llm := (&ScriptedLLM{}).Respond(`{"title": "Rival Serum", "features": "Retinol, Squalane"}`)
	g := NewComparisonGenerator(newTestGateway(t, llm), nil)

	frag, err := g.Generate(context.Background(), testProduct())
	require.NoError(t, err)

	b := frag["products"].(map[string]any)["product_b"].(map[string]any)
	assert.Equal(t, "Rival Serum", b["name"])
	assert.Equal(t, []string{"Retinol", "Squalane"}, b["key_features"])
	assert.Equal(t, "Contact for pricing", b["price"])
}

func TestComparisonRejectsSameName(t *testing.T) {
	llm := (&ScriptedLLM{}).Respond(`{"product_name": "  glowboost serum ", "price": "₹500"}`)
	g := NewComparisonGenerator(newTestGateway(t, llm), nil)

	_, err := g.Generate(context.Background(), testProduct())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matches input product")
}

func TestComparisonGatewayFailure(t *testing.T) {
	llm := (&ScriptedLLM{}).Fail(StatusError{StatusCode: 429, Message: "quota"})
	g := NewComparisonGenerator(newTestGateway(t, llm), nil)

	_, err := g.Generate(context.Background(), testProduct())
	assert.ErrorIs(t, err, ErrKeysExhausted)
}

func TestComparisonMalformedCompetitor(t *testing.T) {
	llm := (&ScriptedLLM{}).Respond("I cannot invent a competitor, sorry.")
	g := NewComparisonGenerator(newTestGateway(t, llm), nil)

	_, err := g.Generate(context.Background(), testProduct())
	require.Error(t, err)
}
