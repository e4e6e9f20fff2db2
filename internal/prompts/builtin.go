package prompts

import (
	"sort"
	"strings"
)

const Version = "1.0.0"

// Argument describes one substitution variable of a template.
type Argument struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Template is a reusable prompt with {name} placeholders.
type Template struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Template    string     `json:"template"`
	Arguments   []Argument `json:"arguments"`
	Builtin     bool       `json:"builtin"`
	CreatedAt   string     `json:"created_at,omitempty"`
}

// Render substitutes argument values into the template body.
func (t Template) Render(values map[string]string) string {
	out := t.Template
	for name, value := range values {
		out = strings.ReplaceAll(out, "{"+name+"}", value)
	}
	return out
}

var builtins = map[string]Template{
	"code-review": {
		Name:        "code-review",
		Description: "Review code for issues, bugs, and improvements",
		Template: `Review the following code for:
1. Potential bugs or errors
2. Security vulnerabilities
3. Performance issues
4. Code style and readability
5. Suggested improvements

Code to review:
{code}

Provide specific, actionable feedback.`,
		Arguments: []Argument{{Name: "code", Description: "The code to review", Required: true}},
		Builtin:   true,
	},
	"explain-code": {
		Name:        "explain-code",
		Description: "Explain what code does in plain English",
		Template: `Explain the following code in plain English, suitable for a beginner:

1. What does this code do overall?
2. Break down each major section
3. Explain any complex or unusual patterns
4. Mention any potential issues or edge cases

Code to explain:
{code}`,
		Arguments: []Argument{{Name: "code", Description: "The code to explain", Required: true}},
		Builtin:   true,
	},
	"write-tests": {
		Name:        "write-tests",
		Description: "Generate test cases for code",
		Template: `Generate comprehensive test cases for the following code:

1. Unit tests for each function/method
2. Edge cases and boundary conditions
3. Error handling scenarios
4. Integration points (if applicable)

Use appropriate testing framework based on the language.

Code to test:
{code}`,
		Arguments: []Argument{{Name: "code", Description: "The code to test", Required: true}},
		Builtin:   true,
	},
	"refactor": {
		Name:        "refactor",
		Description: "Suggest refactoring improvements",
		Template: `Analyze this code for refactoring opportunities:

1. DRY (Don't Repeat Yourself) violations
2. Functions that are too long
3. Poor naming
4. Missing abstractions
5. Simplification opportunities

Provide the refactored version with explanations.

Code to refactor:
{code}`,
		Arguments: []Argument{{Name: "code", Description: "The code to refactor", Required: true}},
		Builtin:   true,
	},
	"debug": {
		Name:        "debug",
		Description: "Help debug an error or issue",
		Template: `Help debug this issue:

Error/Problem:
{error}

Relevant code:
{code}

Steps to reproduce (if known):
{steps}

Analyze and suggest:
1. Likely cause of the issue
2. How to fix it
3. How to prevent similar issues`,
		Arguments: []Argument{
			{Name: "error", Description: "The error message or problem description", Required: true},
			{Name: "code", Description: "The relevant code", Required: true},
			{Name: "steps", Description: "Steps to reproduce (optional)", Required: false},
		},
		Builtin: true,
	},
}

// IsBuiltin reports whether name is one of the permanent templates.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// BuiltinCount is the number of permanent templates.
func BuiltinCount() int { return len(builtins) }

func builtinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
