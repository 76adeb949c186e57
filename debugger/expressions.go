package debugger

import (
	"fmt"

	"github.com/kirin-lang/kirin/vm"
)

// ExpressionEvaluator evaluates watch/breakpoint-condition expressions
// against a VM's register file, keeping a history of results so later
// expressions can refer back to them via $1, $2, etc.
type ExpressionEvaluator struct {
	valueHistory []uint64
	valueNumber  int
}

// NewExpressionEvaluator creates a new expression evaluator
func NewExpressionEvaluator() *ExpressionEvaluator {
	return &ExpressionEvaluator{
		valueHistory: make([]uint64, 0),
	}
}

// EvaluateExpression evaluates an expression and returns the result,
// recording it in the value history.
func (e *ExpressionEvaluator) EvaluateExpression(expr string, machine *vm.VM) (uint64, error) {
	result, err := e.evaluate(expr, machine)
	if err != nil {
		return 0, err
	}

	e.valueHistory = append(e.valueHistory, result)
	e.valueNumber = len(e.valueHistory)

	return result, nil
}

// Evaluate evaluates an expression and returns a boolean result, for
// breakpoint conditions. Does not touch the value history.
func (e *ExpressionEvaluator) Evaluate(expr string, machine *vm.VM) (bool, error) {
	result, err := e.evaluate(expr, machine)
	if err != nil {
		return false, err
	}

	return result != 0, nil
}

// GetValueNumber returns the current value number.
func (e *ExpressionEvaluator) GetValueNumber() int {
	return e.valueNumber
}

// GetValue returns a value from history by number.
func (e *ExpressionEvaluator) GetValue(number int) (uint64, error) {
	if number < 1 || number > len(e.valueHistory) {
		return 0, fmt.Errorf("value $%d not in history", number)
	}

	return e.valueHistory[number-1], nil
}

// evaluate lexes and parses expr, then evaluates it against machine.
func (e *ExpressionEvaluator) evaluate(expr string, machine *vm.VM) (uint64, error) {
	if expr == "" {
		return 0, fmt.Errorf("empty expression")
	}

	tokens := NewExprLexer(expr).TokenizeAll()
	parser := NewExprParser(tokens, machine, e)
	return parser.Parse()
}

// Reset clears the value history.
func (e *ExpressionEvaluator) Reset() {
	e.valueHistory = e.valueHistory[:0]
	e.valueNumber = 0
}
