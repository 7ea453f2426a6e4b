package condition

import (
	"fmt"
	"unicode"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/rowforge/rowforge/table"
)

// Condition is a compiled boolean predicate over a row environment.
type Condition interface {
	Evaluate(env interface{}) bool
}

type exprCondition struct {
	program *vm.Program
}

// New compiles an expression into a Condition. The expression sees row
// values by column name. Evaluation failures (including comparisons against
// null values) classify the row as false rather than erroring.
func New(expression string) (Condition, error) {
	program, err := expr.Compile(expression,
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, err
	}
	return &exprCondition{program: program}, nil
}

func (c *exprCondition) Evaluate(env interface{}) bool {
	result, err := expr.Run(c.program, env)
	if err != nil {
		return false
	}
	b, ok := result.(bool)
	return ok && b
}

// Between builds the closed-interval predicate low <= column <= high.
// A null column value does not satisfy it. The column name is written into
// a compiled expression, so it must be a bare identifier; anything else
// (spaces, operator characters) is rejected rather than silently changing
// the predicate.
func Between(column string, low, high float64) (Condition, error) {
	if !isIdentifier(column) {
		return nil, fmt.Errorf("column name %q cannot be used in an expression", column)
	}
	return New(fmt.Sprintf("%s >= %v && %s <= %v", column, low, column, high))
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

// Label appends a string column to the table holding trueLabel for rows the
// condition accepts and falseLabel for the rest. The input table is not
// modified.
func Label(t *table.Table, cond Condition, trueLabel, falseLabel, outColumn string) (*table.Table, error) {
	vals := make([]interface{}, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		if cond.Evaluate(t.Env(i)) {
			vals[i] = trueLabel
		} else {
			vals[i] = falseLabel
		}
	}
	return t.AppendColumn(table.Column{Name: outColumn, Type: table.TypeString}, vals)
}
