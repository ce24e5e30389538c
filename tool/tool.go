// Package tool exposes the search and sampling operations as schema
// validated agent tools. Arguments arrive as the raw JSON produced by a
// model's function call; each tool validates them against its declared
// parameter schema before execution and reports failures as *ToolError with
// consistent codes.
package tool

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hupe1980/logsift/logging"
)

// Tool is the interface a host agent framework registers and routes calls
// to. Implementations are stateless after construction and safe for
// concurrent use.
type Tool interface {
	// Name returns the unique identifier for this tool (snake_case).
	Name() string

	// Description returns the human-readable description provided to the
	// model so it understands when and how to use the tool.
	Description() string

	// Parameters returns a JSON schema describing the expected arguments.
	Parameters() map[string]any

	// Call executes the tool against raw JSON arguments. The returned value
	// is JSON-serializable by the host.
	Call(tc *Context, raw []byte) (any, error)
}

// Context carries the per-call surface handed to a tool: the request
// context, a logger and a generated function-call ID correlating the model
// request with the execution.
type Context struct {
	ctx            context.Context
	logger         logging.Logger
	functionCallID string
}

// NewContext builds a call context. A nil logger is replaced by NoOpLogger.
func NewContext(ctx context.Context, logger logging.Logger) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Context{ctx: ctx, logger: logger, functionCallID: uuid.NewString()}
}

// Context returns the context associated with the tool invocation.
func (tc *Context) Context() context.Context { return tc.ctx }

// Logger returns the logger associated with the tool invocation.
func (tc *Context) Logger() logging.Logger { return tc.logger }

// FunctionCallID returns the generated call correlation ID.
func (tc *Context) FunctionCallID() string { return tc.functionCallID }

// ToolError represents errors that occur during tool execution.
type ToolError struct {
	Tool    string `json:"tool"`              // Name of the tool that failed
	Message string `json:"message"`           // Error message
	Code    string `json:"code"`              // Error code for categorization
	Details any    `json:"details,omitempty"` // Additional error details
}

// Error codes used by the built-in tools.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeExecution  = "EXECUTION_ERROR"
)

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// NewToolError creates a new ToolError with the specified details.
func NewToolError(tool, message, code string) *ToolError {
	return &ToolError{Tool: tool, Message: message, Code: code}
}
