// Package web holds the HTML templates for the form pages.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"join": strings.Join,
	"hrs": func(h int) string {
		return fmt.Sprintf("%d hrs/week", h)
	},
	"dict": func(kv ...interface{}) (map[string]interface{}, error) {
		if len(kv)%2 != 0 {
			return nil, fmt.Errorf("dict needs key/value pairs")
		}
		m := make(map[string]interface{}, len(kv)/2)
		for i := 0; i < len(kv); i += 2 {
			key, ok := kv[i].(string)
			if !ok {
				return nil, fmt.Errorf("dict key %v is not a string", kv[i])
			}
			m[key] = kv[i+1]
		}
		return m, nil
	},
	"selected": func(a, b string) template.HTMLAttr {
		if a == b {
			return "selected"
		}
		return ""
	},
}

// Templates parses every embedded page and partial. Pages are looked up by
// file name, e.g. "index.html".
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return t, nil
}
