// Package preview renders a single self-contained HTML page from the three
// generated fragments. All visible text comes from the fragments; nothing
// product-specific is hardcoded in the shell.
package preview

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"

	"product_content_pipeline/templates"
)

type pageData struct {
	Name        string
	ProductType string
	Price       string
	Tagline     string
	Description template.HTML
	Features    []string
	Benefits    []benefitItem
	UsageSteps  []usageStep
	TargetUsers string
	FAQ         []faqItem
	ProductA    comparisonSide
	ProductB    comparisonSide
	Cheaper     string
}

type benefitItem struct {
	Benefit     string
	Description string
}

type usageStep struct {
	Action      string
	Description string
}

type faqItem struct {
	Category string
	Question string
	Answer   string
}

type comparisonSide struct {
	Name     string
	Type     string
	Features []string
	Benefits []string
	Price    string
}

// Render builds the preview document from the validated fragments.
func Render(faq, product, comparison templates.Fragment) (string, error) {
	data, err := collect(faq, product, comparison)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func collect(faq, product, comparison templates.Fragment) (pageData, error) {
	p, _ := product["product"].(map[string]any)
	if p == nil {
		return pageData{}, fmt.Errorf("preview: product fragment has no product object")
	}

	d := pageData{
		Name:        str(p["name"]),
		ProductType: str(p["product_type"]),
		Tagline:     str(p["tagline"]),
		Features:    strList(p["key_features"]),
		TargetUsers: strings.Join(strList(p["suitable_for"]), ", "),
	}
	if d.TargetUsers == "" {
		d.TargetUsers = "Everyone"
	}

	// The description may contain markdown from the model.
	desc, err := renderMarkdown(str(p["description"]))
	if err != nil {
		return pageData{}, err
	}
	d.Description = desc

	if price, ok := p["price"].(map[string]any); ok {
		d.Price = str(price["original"])
	}

	if benefits, ok := p["benefits"].(map[string]any); ok {
		for _, item := range mapList(benefits["detailed_benefits"]) {
			d.Benefits = append(d.Benefits, benefitItem{
				Benefit:     str(item["benefit"]),
				Description: str(item["description"]),
			})
		}
	}
	if usage, ok := p["how_to_use"].(map[string]any); ok {
		for _, item := range mapList(usage["steps"]) {
			d.UsageSteps = append(d.UsageSteps, usageStep{
				Action:      str(item["action"]),
				Description: str(item["description"]),
			})
		}
	}

	for _, item := range mapList(faq["questions"]) {
		d.FAQ = append(d.FAQ, faqItem{
			Category: str(item["category"]),
			Question: str(item["question"]),
			Answer:   str(item["answer"]),
		})
	}

	if products, ok := comparison["products"].(map[string]any); ok {
		d.ProductA = side(products["product_a"])
		d.ProductB = side(products["product_b"])
	}
	if comp, ok := comparison["comparison"].(map[string]any); ok {
		if pricing, ok := comp["price"].(map[string]any); ok {
			d.Cheaper = str(pricing["cheaper_product"])
		}
	}
	return d, nil
}

func renderMarkdown(md string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func side(v any) comparisonSide {
	p, _ := v.(map[string]any)
	if p == nil {
		return comparisonSide{}
	}
	return comparisonSide{
		Name:     str(p["name"]),
		Type:     str(p["product_type"]),
		Features: strList(p["key_features"]),
		Benefits: strList(p["benefits"]),
		Price:    str(p["price"]),
	}
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func strList(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func mapList(v any) []map[string]any {
	switch t := v.(type) {
	case []map[string]any:
		return t
	case []map[string]string:
		out := make([]map[string]any, 0, len(t))
		for _, m := range t {
			c := make(map[string]any, len(m))
			for k, s := range m {
				c[k] = s
			}
			out = append(out, c)
		}
		return out
	case []any:
		out := make([]map[string]any, 0, len(t))
		for _, item := range t {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}
