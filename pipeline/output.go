package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/tidwall/sjson"

	"product_content_pipeline/preview"
	"product_content_pipeline/templates"
)

// SchemaVersion is stamped into the metadata block of every output document.
const SchemaVersion = "1.0"

// Writer renders the three JSON documents plus the HTML preview. Everything
// is rendered in memory before the first byte hits disk, so a failed run
// never leaves partial files.
type Writer struct {
	Dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

type outputDoc struct {
	name string
	data []byte
}

// Write emits faq.json, product_page.json, comparison_page.json and
// preview.html for a validated run.
func (w *Writer) Write(state *WorkflowState) ([]string, error) {
	docs := make([]outputDoc, 0, 4)
	pages := []struct {
		file  string
		agent string
		frag  templates.Fragment
	}{
		{"faq.json", "faq_generator", state.FAQ},
		{"product_page.json", "product_page_generator", state.Product},
		{"comparison_page.json", "comparison_generator", state.Comparison},
	}
	for _, page := range pages {
		data, err := renderDocument(page.frag, page.agent)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", page.file, err)
		}
		docs = append(docs, outputDoc{name: page.file, data: data})
	}

	html, err := preview.Render(state.FAQ, state.Product, state.Comparison)
	if err != nil {
		return nil, fmt.Errorf("render preview: %w", err)
	}
	docs = append(docs, outputDoc{name: "preview.html", data: []byte(html)})

	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return nil, err
	}
	files := make([]string, 0, len(docs))
	for _, doc := range docs {
		path := filepath.Join(w.Dir, doc.name)
		if err := os.WriteFile(path, doc.data, 0o644); err != nil {
			// All or nothing: a failed write takes the earlier files
			// of this run down with it.
			for _, written := range files {
				_ = os.Remove(written)
			}
			return nil, fmt.Errorf("write %s: %w", doc.name, err)
		}
		files = append(files, path)
	}
	return files, nil
}

// renderDocument marshals a fragment without its working blocks mapping and
// stamps the metadata fields onto the serialized document.
func renderDocument(frag templates.Fragment, agent string) ([]byte, error) {
	doc := make(map[string]any, len(frag))
	for k, v := range frag {
		if k == "blocks" {
			continue
		}
		doc[k] = v
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}

	opts := &sjson.Options{ReplaceInPlace: true}
	for key, value := range map[string]any{
		"metadata.generated_at":      time.Now().Format(time.RFC3339),
		"metadata.agent":             agent,
		"metadata.version":           SchemaVersion,
		"metadata.logic_blocks_used": blockNames(frag),
	} {
		if data, err = sjson.SetBytesOptions(data, key, value, opts); err != nil {
			return nil, err
		}
	}
	return data, nil
}

func blockNames(frag templates.Fragment) []string {
	blocks := frag.Blocks()
	names := make([]string, 0, len(blocks))
	for name := range blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
