// Copyright 2017 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/casbin/govaluate"

	"github.com/wuc656/walkctl"
)

// Expectation is a boolean expression over the state of the named controls.
// A control property is written in brackets, as in [name.Text], and the
// focused control's name is available as focus.
type Expectation struct {
	source string
	expr   *govaluate.EvaluableExpression
}

var expressionFunctions = map[string]govaluate.ExpressionFunction{
	// len counts user-perceived characters.
	"len": func(args ...any) (any, error) {
		if len(args) != 1 {
			return nil, errors.New("len takes one argument")
		}
		s, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("len of %T", args[0])
		}
		return float64(walkctl.NewText(s).Graphemes()), nil
	},
	"contains": func(args ...any) (any, error) {
		if len(args) != 2 {
			return nil, errors.New("contains takes two arguments")
		}
		s, ok1 := args[0].(string)
		sub, ok2 := args[1].(string)
		if !ok1 || !ok2 {
			return nil, errors.New("contains takes strings")
		}
		return strings.Contains(s, sub), nil
	},
}

func NewExpectation(source string) (*Expectation, error) {
	expr, err := govaluate.NewEvaluableExpressionWithFunctions(source, expressionFunctions)
	if err != nil {
		return nil, fmt.Errorf("expectation %q: %w", source, err)
	}
	return &Expectation{source: source, expr: expr}, nil
}

func (e *Expectation) String() string {
	return e.source
}

// Vars returns the parameter names the expression reads.
func (e *Expectation) Vars() []string {
	return e.expr.Vars()
}

// Check evaluates the expression against params. Anything but a boolean
// result is an error.
func (e *Expectation) Check(params govaluate.Parameters) (bool, error) {
	v, err := e.expr.Eval(params)
	if err != nil {
		return false, err
	}
	ok, isBool := v.(bool)
	if !isBool {
		return false, fmt.Errorf("expectation %q yields %T, not a boolean", e.source, v)
	}
	return ok, nil
}
