package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Registry manages the CEL environment and provides helper methods for evaluation.
type Registry struct {
	env *cel.Env
}

// NewRegistry initializes the CEL environment with the player query variables.
func NewRegistry() (*Registry, error) {
	opts := make([]cel.EnvOption, 0, len(Vars))
	for _, v := range Vars {
		opts = append(opts, cel.Variable(v.Name, v.Type))
	}
	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, err
	}
	return &Registry{env: env}, nil
}

func (r *Registry) compile(expression string) (cel.Program, *cel.Ast, error) {
	ast, iss := r.env.Compile(expression)
	if iss.Err() != nil {
		return nil, nil, iss.Err()
	}
	prog, err := r.env.Program(ast)
	if err != nil {
		return nil, nil, err
	}
	return prog, ast, nil
}

// Eval executes a CEL expression against the provided context.
func (r *Registry) Eval(expression string, context map[string]any) (any, error) {
	prog, _, err := r.compile(expression)
	if err != nil {
		return nil, err
	}
	out, _, err := prog.Eval(context)
	if err != nil {
		return nil, err
	}
	return out.Value(), nil
}

// Filter returns the names of the contexts for which the boolean expression
// holds, in order.
func (r *Registry) Filter(expression string, contexts []map[string]any) ([]string, error) {
	prog, ast, err := r.compile(expression)
	if err != nil {
		return nil, err
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("expression must be a condition, got %s", ast.OutputType())
	}
	var names []string
	for _, ctx := range contexts {
		out, _, err := prog.Eval(ctx)
		if err != nil {
			return nil, fmt.Errorf("evaluating for %v: %w", ctx["name"], err)
		}
		if ok, _ := out.Value().(bool); ok {
			name, _ := ctx["name"].(string)
			names = append(names, name)
		}
	}
	return names, nil
}
