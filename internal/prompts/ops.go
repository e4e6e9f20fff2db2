package prompts

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"ea-mcp-go/internal/storage"
)

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// AddArgs is the input for adding a custom prompt.
type AddArgs struct {
	Name        string `json:"name" jsonschema:"required,description=Unique name for the prompt (lowercase with hyphens)"`
	Description string `json:"description" jsonschema:"required,description=What this prompt does"`
	Template    string `json:"template" jsonschema:"required,description=The prompt template (use {arg_name} for variables)"`
	Arguments   string `json:"arguments" jsonschema:"description=Comma-separated list of argument names"`
}

func (a *AddArgs) Validate() error {
	a.Name = strings.TrimSpace(a.Name)
	a.Description = strings.TrimSpace(a.Description)
	a.Template = strings.TrimSpace(a.Template)
	a.Arguments = strings.TrimSpace(a.Arguments)
	if n := utf8.RuneCountInString(a.Name); n < 2 || n > 50 {
		return fmt.Errorf("name must be between 2 and 50 characters")
	}
	if !namePattern.MatchString(a.Name) {
		return fmt.Errorf("Name must be lowercase letters, numbers, and hyphens only, starting with a letter")
	}
	if n := utf8.RuneCountInString(a.Description); n < 5 || n > 200 {
		return fmt.Errorf("description must be between 5 and 200 characters")
	}
	if n := utf8.RuneCountInString(a.Template); n < 10 || n > 5000 {
		return fmt.Errorf("template must be between 10 and 5000 characters")
	}
	return nil
}

// ListArgs is the input for listing prompts.
type ListArgs struct {
	IncludeTemplates bool `json:"include_templates" jsonschema:"description=Show full template text (default: false)"`
}

// RemoveArgs is the input for removing a custom prompt.
type RemoveArgs struct {
	Name    string `json:"name" jsonschema:"required,description=The prompt name to remove"`
	Confirm bool   `json:"confirm" jsonschema:"description=Must be true to confirm deletion"`
}

func (a *RemoveArgs) Validate() error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	return nil
}

// Add stores a custom prompt. Built-in names are protected.
func (s *Store) Add(args AddArgs) (string, error) {
	if IsBuiltin(args.Name) {
		return fmt.Sprintf("Error: '%s' is a built-in prompt and cannot be overwritten.", args.Name), nil
	}

	var argList []Argument
	for _, name := range strings.Split(args.Arguments, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		argList = append(argList, Argument{
			Name:        name,
			Description: fmt.Sprintf("Value for %s", name),
			Required:    true,
		})
	}

	custom := s.loadCustom()
	custom[args.Name] = Template{
		Name:        args.Name,
		Description: args.Description,
		Template:    args.Template,
		Arguments:   argList,
		Builtin:     false,
		CreatedAt:   storage.Timestamp(s.Now()),
	}
	if err := s.saveCustom(custom); err != nil {
		return "", err
	}

	argsDisplay := "none"
	if len(argList) > 0 {
		names := make([]string, len(argList))
		for i, a := range argList {
			names[i] = a.Name
		}
		argsDisplay = strings.Join(names, ", ")
	}
	return fmt.Sprintf("Custom prompt added: %s\nDescription: %s\nArguments: %s\n\nUse with: /prompt %s",
		args.Name, args.Description, argsDisplay, args.Name), nil
}

// List renders the built-in and custom sections, alphabetical within each.
func (s *Store) List(args ListArgs) string {
	custom := s.loadCustom()

	output := []string{"# Available Prompts\n"}
	output = append(output, "## Built-in Prompts\n")
	for _, name := range builtinNames() {
		output = appendPrompt(output, builtins[name], args.IncludeTemplates)
	}

	if len(custom) > 0 {
		names := make([]string, 0, len(custom))
		for name := range custom {
			names = append(names, name)
		}
		sort.Strings(names)

		output = append(output, "## Custom Prompts\n")
		for _, name := range names {
			output = appendPrompt(output, custom[name], args.IncludeTemplates)
		}
	}

	output = append(output, fmt.Sprintf("**Total:** %d built-in, %d custom", BuiltinCount(), len(custom)))

	return strings.Join(output, "\n")
}

func appendPrompt(output []string, t Template, includeTemplate bool) []string {
	argNames := make([]string, len(t.Arguments))
	for i, a := range t.Arguments {
		argNames[i] = a.Name
	}
	args := strings.Join(argNames, ", ")
	if args == "" {
		args = "none"
	}
	output = append(output, fmt.Sprintf("### %s", t.Name))
	output = append(output, fmt.Sprintf("**Description:** %s", t.Description))
	output = append(output, fmt.Sprintf("**Arguments:** %s", args))
	if includeTemplate {
		output = append(output, fmt.Sprintf("\n```\n%s\n```", t.Template))
	}
	return append(output, "")
}

// Remove deletes a custom prompt. Built-ins are permanent.
func (s *Store) Remove(args RemoveArgs) (string, error) {
	if !args.Confirm {
		return "Set confirm=True to delete. This cannot be undone.", nil
	}
	if IsBuiltin(args.Name) {
		return fmt.Sprintf("Error: '%s' is a built-in prompt and cannot be removed.", args.Name), nil
	}

	custom := s.loadCustom()
	if _, ok := custom[args.Name]; !ok {
		return fmt.Sprintf("Custom prompt not found: %s. Use ea_list_prompts to see available prompts.", args.Name), nil
	}

	delete(custom, args.Name)
	if err := s.saveCustom(custom); err != nil {
		return "", err
	}
	return fmt.Sprintf("Removed custom prompt: %s", args.Name), nil
}
