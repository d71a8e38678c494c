package core

import (
	"github.com/google/cel-go/cel"
	"github.com/spf13/cast"
	"github.com/vuuvv/errors"
)

type CelEvaluator struct {
	expr string
	prg  cel.Program
}

func CompileExpression(expr string) (*CelEvaluator, error) {
	env, err := cel.NewEnv(
		cel.Variable("vars", cel.MapType(cel.StringType, cel.DynType)),   // vars为报文相关的变量, 如packet_len
		cel.Variable("fields", cel.MapType(cel.StringType, cel.DynType)), // fields为已经解析出来的字段
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, errors.Wrapf(issues.Err(), "compile expression '%s'", expr)
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &CelEvaluator{expr: expr, prg: prg}, nil
}

func (e *CelEvaluator) String() string {
	return e.expr
}

func (e *CelEvaluator) Execute(ctx *Context) (any, error) {
	input := map[string]any{
		"vars":   ctx.Vars,
		"fields": ctx.Fields,
	}
	out, _, err := e.prg.Eval(input)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out.Value(), nil
}

// ExecuteInt runs the expression and converts the result to an int.
func (e *CelEvaluator) ExecuteInt(ctx *Context) (int, error) {
	res, err := e.Execute(ctx)
	if err != nil {
		return 0, err
	}
	v, err := cast.ToIntE(res)
	if err != nil {
		return 0, errors.Errorf("expression '%s' did not return an integer, %v", e.expr, res)
	}
	return v, nil
}
