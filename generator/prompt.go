package generator

import (
	"fmt"
	"strings"

	"product_content_pipeline/model"
)

const systemJSONOnly = "You are a product content writer. Output ONLY the requested JSON, no commentary."

func writeProductInfo(sb *strings.Builder, p model.ProductRecord) {
	sb.WriteString("Product Information:\n")
	fmt.Fprintf(sb, "- Name: %s\n", p.Name)
	fmt.Fprintf(sb, "- Type/Version: %s\n", p.ProductType)
	fmt.Fprintf(sb, "- Target Users: %s\n", strings.Join(p.TargetUsers, ", "))
	fmt.Fprintf(sb, "- Key Features: %s\n", strings.Join(p.KeyFeatures, ", "))
	fmt.Fprintf(sb, "- Benefits: %s\n", strings.Join(p.Benefits, ", "))
	fmt.Fprintf(sb, "- How to Use: %s\n", p.HowToUse)
	fmt.Fprintf(sb, "- Considerations: %s\n", p.Considerations)
	fmt.Fprintf(sb, "- Price: %s\n", p.Price)
}

// BuildQuestionsPrompt asks for count customer questions across the five
// fixed categories.
func BuildQuestionsPrompt(p model.ProductRecord, count int) Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate exactly %d user questions about this product.\n", count)
	sb.WriteString("The questions should be what a potential customer might ask.\n\n")
	writeProductInfo(&sb, p)
	sb.WriteString("\nGenerate questions in these 5 categories (at least 3 per category):\n")
	sb.WriteString("1. Informational - what the product is and does\n")
	sb.WriteString("2. Safety - limitations, considerations, suitability\n")
	sb.WriteString("3. Usage - how to use and get started\n")
	sb.WriteString("4. Purchase - price, value, availability\n")
	sb.WriteString("5. Comparison - how it compares to alternatives\n\n")
	sb.WriteString("Output a JSON array with this structure:\n")
	sb.WriteString(`[{"category": "Informational", "question": "What is...?"}]` + "\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- Every question must be distinct, no rephrasings of the same question\n")
	sb.WriteString("- Base questions ONLY on the provided product data\n")
	sb.WriteString("- Make questions specific to THIS product type\n")

	return Prompt{System: systemJSONOnly, User: sb.String()}
}

// BuildMoreQuestionsPrompt asks for additional questions not overlapping the
// ones already generated. Used by the regeneration loop.
func BuildMoreQuestionsPrompt(p model.ProductRecord, existing []model.Question, needed int) Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate %d MORE user questions about this product.\n\n", needed)
	writeProductInfo(&sb, p)
	sb.WriteString("\nAlready asked (do NOT repeat or rephrase any of these):\n")
	for _, q := range existing {
		fmt.Fprintf(&sb, "- %s\n", q.Text)
	}
	sb.WriteString("\nUse the categories Informational, Safety, Usage, Purchase, Comparison.\n")
	sb.WriteString("Output a JSON array: " + `[{"category": "X", "question": "Y?"}]` + "\n")

	return Prompt{System: systemJSONOnly, User: sb.String()}
}

// BuildAnswersPrompt asks for answers to the selected FAQ questions in a
// single call, keyed by question id.
func BuildAnswersPrompt(p model.ProductRecord, questions []model.Question) Prompt {
	var sb strings.Builder
	sb.WriteString("Answer the following customer questions about this product.\n\n")
	writeProductInfo(&sb, p)
	sb.WriteString("\nQuestions:\n")
	for _, q := range questions {
		fmt.Fprintf(&sb, "- id %s: %s\n", q.ID, q.Text)
	}
	sb.WriteString("\nRules:\n")
	sb.WriteString("- Answer every question in 1-3 sentences\n")
	sb.WriteString("- Use ONLY the provided product data, do not invent specifications\n")
	sb.WriteString("- Output a JSON array: " + `[{"id": "q1", "answer": "..."}]` + "\n")

	return Prompt{System: systemJSONOnly, User: sb.String()}
}

// BuildProductCopyPrompt asks for the marketing copy of the product page.
func BuildProductCopyPrompt(p model.ProductRecord) Prompt {
	var sb strings.Builder
	sb.WriteString("Write marketing copy for this product's detail page.\n\n")
	writeProductInfo(&sb, p)
	sb.WriteString("\nOutput a JSON object with this structure:\n")
	sb.WriteString(`{"tagline": "...", "headline": "...", "description": "..."}` + "\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- tagline: one short punchy line\n")
	sb.WriteString("- headline: product name plus its key differentiator\n")
	sb.WriteString("- description: 2-4 sentences, markdown allowed, grounded in the data above\n")

	return Prompt{System: systemJSONOnly, User: sb.String()}
}

// BuildCompetitorPrompt asks the model to fabricate a fictional comparable
// competitor. The competitor is derived from this prompt alone; the
// pipeline performs no competitor research of any kind.
func BuildCompetitorPrompt(p model.ProductRecord) Prompt {
	var sb strings.Builder
	sb.WriteString("Invent a FICTIONAL competitor product to compare against this one.\n\n")
	writeProductInfo(&sb, p)
	sb.WriteString("\nThe competitor must:\n")
	sb.WriteString("1. Be fictional, with a name clearly different from the input product\n")
	sb.WriteString("2. Compete in the same category with similar but different features\n")
	sb.WriteString("3. Be priced competitively (higher or lower)\n")
	sb.WriteString("4. Target a similar audience\n\n")
	sb.WriteString("Output a JSON object with this exact structure:\n")
	sb.WriteString(`{
    "name": "Competitor Product Name",
    "product_type": "Key differentiator or version",
    "target_users": ["Target User 1", "Target User 2"],
    "key_features": ["Feature 1", "Feature 2", "Feature 3"],
    "benefits": ["Benefit 1", "Benefit 2", "Benefit 3"],
    "how_to_use": "How to use or get started",
    "considerations": "Limitations or considerations",
    "price": "Pricing"
}` + "\n")

	return Prompt{System: systemJSONOnly, User: sb.String()}
}
