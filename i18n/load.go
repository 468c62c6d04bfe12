package i18n

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
	"golang.org/x/text/language"
)

// LoadFile reads a locale resource file at path, tolerating // and /* */
// comments via jsonc, and loads its {key: template} entries under tag.
//
// Nested objects are flattened with "." as the separator, so a file such
// as {"string": {"type_error": "expected a string"}} registers under the
// key "string.type_error" — message keys mirror the dotted code namespace
// diag.Code uses for its own taxonomy.
func (r *Registry) LoadFile(tag language.Tag, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("i18n: read %s: %w", path, err)
	}

	clean := jsonc.ToJSON(raw)

	var tree map[string]any
	if err := json.Unmarshal(clean, &tree); err != nil {
		return fmt.Errorf("i18n: parse %s: %w", path, err)
	}

	flat := make(map[string]string)
	flatten("", tree, flat)
	r.Load(tag, flat)
	return nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch x := v.(type) {
		case string:
			out[key] = x
		case map[string]any:
			flatten(key, x, out)
		default:
			out[key] = fmt.Sprintf("%v", x)
		}
	}
}
