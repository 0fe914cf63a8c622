// Package filter compiles expr expressions into predicates over curated
// records, used by the CLI list commands for client-side filtering.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/woodmark/curatectl/curated"
)

// Filter is a compiled boolean expression, evaluated against one record's
// environment at a time.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into a Filter. The expression must evaluate
// to a boolean; variables not present in a record's environment evaluate to
// nil rather than failing the whole run.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     err.Error(),
		}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the source expression the filter was compiled from.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a record environment.
func (f *Filter) Match(env map[string]any) (bool, error) {
	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, Err: err}
	}

	matched, ok := out.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			Err:        fmt.Errorf("expression evaluated to %T, not bool", out),
		}
	}
	return matched, nil
}

// LinkEnv builds the evaluation environment for a link.
func LinkEnv(link curated.Link) map[string]any {
	return map[string]any{
		"id":          link.ID.String(),
		"url":         link.URL,
		"title":       link.Title,
		"description": link.Description,
		"image":       link.Image,
		"category":    link.Category,
	}
}

// IssueEnv builds the evaluation environment for an issue. Timestamp fields
// are present only when the issue carries them.
func IssueEnv(issue curated.Issue) map[string]any {
	env := map[string]any{
		"id":        issue.ID,
		"number":    issue.Number,
		"summary":   issue.Summary,
		"url":       issue.URL,
		"published": issue.IsPublished(),
	}
	if issue.PublishedAt != nil {
		env["published_at"] = *issue.PublishedAt
	}
	if issue.UpdatedAt != nil {
		env["updated_at"] = *issue.UpdatedAt
	}
	return env
}
