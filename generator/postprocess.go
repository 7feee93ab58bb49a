package generator

import (
	"errors"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSON pulls a JSON payload out of a free-text model response.
// Models routinely wrap JSON in markdown fences or surround it with prose;
// this strips the wrapping and verifies the payload actually parses.
func ExtractJSON(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", errors.New("model returned empty response")
	}

	if m := fenceRe.FindStringSubmatch(cleaned); len(m) >= 2 {
		cleaned = strings.TrimSpace(m[1])
	} else if strings.Contains(cleaned, "```") {
		cleaned = strings.ReplaceAll(cleaned, "```json", "")
		cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, "```", ""))
	}

	if !gjson.Valid(cleaned) {
		// Last resort: take the outermost object or array literal.
		if sub := outermostJSON(cleaned); sub != "" && gjson.Valid(sub) {
			return sub, nil
		}
		return "", errors.New("model response is not valid json")
	}
	return cleaned, nil
}

func outermostJSON(s string) string {
	for _, pair := range [][2]string{{"[", "]"}, {"{", "}"}} {
		start := strings.Index(s, pair[0])
		end := strings.LastIndex(s, pair[1])
		if start >= 0 && end > start {
			return s[start : end+1]
		}
	}
	return ""
}
