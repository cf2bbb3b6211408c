// Package tools declares the read tools the conversation orchestrator exposes
// to the model. Every tool validates its arguments against a JSON schema
// before the handler runs; handlers execute synchronously against the corpus
// snapshot and have no side effects.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/confscout/scout/pkg/llm"
)

// ErrUnknownTool is returned when the model calls a tool that was never
// registered.
var ErrUnknownTool = errors.New("unknown tool")

// ValidationError reports schema violations in the model-supplied arguments.
// The orchestrator uses it to drive the single self-correction round.
type ValidationError struct {
	Tool     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %s", e.Tool, strings.Join(e.Problems, "; "))
}

// Result is the uniform handler payload serialized back to the model.
type Result struct {
	Success bool   `json:"success"`
	Count   int    `json:"count,omitempty"`
	Results any    `json:"results,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON renders the result for a tool-role message.
func (r *Result) JSON() string {
	data, err := json.Marshal(r)
	if err != nil {
		return `{"success":false,"error":"failed to encode tool result"}`
	}
	return string(data)
}

// Handler executes a validated tool call. args is the decoded JSON object.
type Handler func(ctx context.Context, args map[string]any) *Result

// Tool couples a declaration with its handler.
type Tool struct {
	Name        string
	Description string
	Schema      json.RawMessage

	handler  Handler
	compiled *gojsonschema.Schema
}

const handlerTimeout = 2 * time.Second

// Registry holds the toolset in registration order.
type Registry struct {
	tools map[string]*Tool
	order []string
}

// NewRegistry creates an empty registry; see NewStartupRegistry for the
// standard toolset.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*Tool)}
}

// Register adds a tool. The schema must compile; a broken schema is a
// programming error.
func (r *Registry) Register(name, description string, schema json.RawMessage, handler Handler) error {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schema))
	if err != nil {
		return fmt.Errorf("failed to compile schema for tool %s: %w", name, err)
	}
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %s registered twice", name)
	}
	r.tools[name] = &Tool{
		Name:        name,
		Description: description,
		Schema:      schema,
		handler:     handler,
		compiled:    compiled,
	}
	r.order = append(r.order, name)
	return nil
}

// Defs lists the tool declarations for the LLM request, in registration
// order.
func (r *Registry) Defs() []llm.ToolDef {
	defs := make([]llm.ToolDef, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		defs = append(defs, llm.ToolDef{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Schema,
		})
	}
	return defs
}

// Names lists the registered tool names in order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Execute validates rawArgs against the tool's schema and runs the handler.
// Unknown tools and schema violations are returned as errors; handler-level
// failures are captured inside the Result.
func (r *Registry) Execute(ctx context.Context, name, rawArgs string) (*Result, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	if strings.TrimSpace(rawArgs) == "" {
		rawArgs = "{}"
	}
	validation, err := tool.compiled.Validate(gojsonschema.NewStringLoader(rawArgs))
	if err != nil {
		return nil, &ValidationError{Tool: name, Problems: []string{"arguments are not a JSON object"}}
	}
	if !validation.Valid() {
		ve := &ValidationError{Tool: name}
		for _, problem := range validation.Errors() {
			ve.Problems = append(ve.Problems, problem.String())
		}
		return nil, ve
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
		return nil, &ValidationError{Tool: name, Problems: []string{"arguments are not a JSON object"}}
	}

	ctx, cancel := context.WithTimeout(ctx, handlerTimeout)
	defer cancel()
	return tool.handler(ctx, args), nil
}
