package blocks

import (
	"fmt"
	"strings"

	"product_content_pipeline/model"
)

// CompareFeatures computes the feature overlap between two products.
func CompareFeatures(a, b model.ProductRecord) map[string]any {
	common, uniqueA, uniqueB := diffStrings(a.KeyFeatures, b.KeyFeatures)
	return map[string]any{
		"common":              common,
		"unique_to_product_a": uniqueA,
		"unique_to_product_b": uniqueB,
		"total_features_a":    len(a.KeyFeatures),
		"total_features_b":    len(b.KeyFeatures),
	}
}

// CompareBenefits computes the benefit overlap between two products.
func CompareBenefits(a, b model.ProductRecord) map[string]any {
	common, uniqueA, uniqueB := diffStrings(a.Benefits, b.Benefits)
	return map[string]any{
		"common":              common,
		"unique_to_product_a": uniqueA,
		"unique_to_product_b": uniqueB,
		"advantage_product_a": uniqueA,
		"advantage_product_b": uniqueB,
		"total_benefits_a":    len(a.Benefits),
		"total_benefits_b":    len(b.Benefits),
	}
}

// diffStrings splits two lists into common and unique entries, comparing
// case-insensitively while preserving the original casing and order.
func diffStrings(listA, listB []string) (common, uniqueA, uniqueB []string) {
	setB := make(map[string]bool, len(listB))
	for _, s := range listB {
		setB[strings.ToLower(s)] = true
	}
	setA := make(map[string]bool, len(listA))
	for _, s := range listA {
		setA[strings.ToLower(s)] = true
	}
	for _, s := range listA {
		if setB[strings.ToLower(s)] {
			common = append(common, s)
		} else {
			uniqueA = append(uniqueA, s)
		}
	}
	for _, s := range listB {
		if !setA[strings.ToLower(s)] {
			uniqueB = append(uniqueB, s)
		}
	}
	return common, uniqueA, uniqueB
}

// Pricing compares the two prices using normalized amounts. No LLM call.
func Pricing(a, b model.ProductRecord) map[string]any {
	priceA := model.ParsePrice(a.Price)
	priceB := model.ParsePrice(b.Price)

	cheaper := a.Name
	if priceB.Amount < priceA.Amount {
		cheaper = b.Name
	}
	diff := priceA.Amount - priceB.Amount
	if diff < 0 {
		diff = -diff
	}

	return map[string]any{
		"price_a":         priceA.Map(),
		"price_b":         priceB.Map(),
		"price_a_raw":     priceA.Original,
		"price_b_raw":     priceB.Original,
		"difference":      diff,
		"cheaper_product": cheaper,
		"value_analysis":  fmt.Sprintf("%s is more budget-friendly.", cheaper),
	}
}
