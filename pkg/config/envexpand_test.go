package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("SCOUT_TEST_KEY", "secret123")
	t.Setenv("SCOUT_TEST_HOST", "db.internal")
	t.Setenv("SCOUT_TEST_PORT", "5432")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple substitution",
			input: "api_key: {{.SCOUT_TEST_KEY}}",
			want:  "api_key: secret123",
		},
		{
			name:  "multiple variables in one line",
			input: "url: {{.SCOUT_TEST_HOST}}:{{.SCOUT_TEST_PORT}}",
			want:  "url: db.internal:5432",
		},
		{
			name:  "dollar signs pass through untouched",
			input: "phrase: costs $5/month",
			want:  "phrase: costs $5/month",
		},
		{
			name:  "shell-style reference is not template syntax",
			input: "path: ${SCOUT_TEST_HOST}",
			want:  "path: ${SCOUT_TEST_HOST}",
		},
		{
			name:  "missing variable becomes empty",
			input: "key: {{.SCOUT_TEST_ABSENT}}",
			want:  "key: ",
		},
		{
			name:  "malformed template returns input unchanged",
			input: "broken: {{.SCOUT",
			want:  "broken: {{.SCOUT",
		},
		{
			name:  "plain yaml without templates",
			input: "workers: 3\nmodel: gpt-4o-mini",
			want:  "workers: 3\nmodel: gpt-4o-mini",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(expandEnv([]byte(tt.input))))
		})
	}
}
