package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// expandEnv substitutes {{.VAR_NAME}} references in raw YAML with environment
// variable values. Template syntax is used instead of $VAR so trigger phrases
// and URLs that legitimately contain dollar signs survive untouched. Unknown
// variables become empty strings; the validator rejects required fields that
// end up empty. Content that does not parse as a template passes through
// unchanged.
func expandEnv(data []byte) []byte {
	tmpl, err := template.New("").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := map[string]string{}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, env); err != nil {
		return data
	}
	return out.Bytes()
}
