package expr

// StackDepth bounds both the operand and the operator stack.
const StackDepth = 32

const (
	// opNone marks that an operand was just consumed.
	opNone byte = 0

	// opStart marks the start of the expression; it admits the same tokens
	// as an open parenthesis.
	opStart byte = 1

	// opNegate is unary minus, distinguished from subtraction by position.
	opNegate byte = 'N'
)

// evaluator holds the operator-precedence state for one expression.
type evaluator struct {
	syms Resolver

	// lastOp is the most recently accepted operator, opNone after an
	// operand, or opStart before any token.
	lastOp byte

	data  [StackDepth]int32
	ndata int
	ops   [StackDepth]byte
	nops  int
}

// expectOperand reports whether an operand (or open parenthesis) may come
// next: anything but another operand or a closing parenthesis has pushed an
// operator that still needs its right hand side.
func (ev *evaluator) expectOperand() bool {
	return ev.lastOp != opNone && ev.lastOp != ')'
}

func (ev *evaluator) operand(tok string) error {
	if !ev.expectOperand() {
		return errorf(ErrSyntax, "syntax error at token %s", tok)
	}

	value, ok := ev.value(tok)
	if !ok {
		return errorf(ErrUnknownSymbol, "can't parse token: %s", tok)
	}

	if ev.ndata >= len(ev.data) {
		return errorf(ErrStackOverflow, "data stack overflow at token %s", tok)
	}
	ev.data[ev.ndata] = value
	ev.ndata++
	ev.lastOp = opNone
	return nil
}

func (ev *evaluator) operator(op byte) error {
	switch op {
	case '(':
		if !ev.expectOperand() {
			return errorf(ErrSyntax, "syntax error at operator %c", op)
		}
	case '-':
		if ev.expectOperand() {
			op = opNegate
		}
	default:
		if ev.expectOperand() {
			if op == ')' && !ev.pending('(') {
				return errorf(ErrParenMismatch, "parenthesis mismatch: )")
			}
			return errorf(ErrSyntax, "syntax error at operator %c", op)
		}
	}

	if op == ')' {
		for ev.nops > 0 && ev.ops[ev.nops-1] != '(' {
			if err := ev.apply(); err != nil {
				return err
			}
		}
		if ev.nops == 0 {
			return errorf(ErrParenMismatch, "parenthesis mismatch: )")
		}
		ev.nops--
	} else {
		for !ev.canPush(op) {
			if err := ev.apply(); err != nil {
				return err
			}
		}
		if ev.nops >= len(ev.ops) {
			return errorf(ErrStackOverflow, "operator stack overflow: %s", opString(op))
		}
		ev.ops[ev.nops] = op
		ev.nops++
	}

	ev.lastOp = op
	return nil
}

func (ev *evaluator) pending(op byte) bool {
	for i := ev.nops - 1; i >= 0; i-- {
		if ev.ops[i] == op {
			return true
		}
	}
	return false
}

// canPush reports whether op may be pushed over the current top operator, or
// whether the top must be applied first.
func (ev *evaluator) canPush(op byte) bool {
	if ev.nops == 0 || op == '(' {
		return true
	}

	top := ev.ops[ev.nops-1]
	if top == '(' {
		return true
	}

	switch op {
	case opNegate:
		return true
	case '*', '/', '%':
		return top == '+' || top == '-'
	}
	return false
}

// apply pops one operator and its operands, pushing the result.
func (ev *evaluator) apply() error {
	op := ev.ops[ev.nops-1]
	ev.nops--

	arity := 2
	if op == opNegate {
		arity = 1
	}
	// The operand/operator checks in eval keep enough operands stacked; this
	// only guards the indexing below.
	if ev.ndata < arity {
		return errorf(ErrMalformed, "missing operand for %s", opString(op))
	}

	b := ev.data[ev.ndata-1]
	ev.ndata--
	var a int32
	if arity == 2 {
		a = ev.data[ev.ndata-1]
		ev.ndata--
	}

	var result int32
	switch op {
	case '+':
		result = a + b
	case '-':
		result = a - b
	case '*':
		result = a * b
	case '/':
		if b == 0 {
			return errorf(ErrDivideByZero, "divide by zero")
		}
		result = a / b
	case '%':
		if b == 0 {
			return errorf(ErrDivideByZero, "divide by zero")
		}
		result = a % b
	case opNegate:
		result = -b
	}

	ev.data[ev.ndata] = result
	ev.ndata++
	return nil
}

func (ev *evaluator) finish() (int32, error) {
	if ev.expectOperand() {
		if ev.lastOp == '(' {
			return 0, errorf(ErrParenMismatch, "parenthesis mismatch: (")
		}
		return 0, errorf(ErrUnbalanced, "syntax error at end of expression")
	}

	for ev.nops > 0 {
		if ev.ops[ev.nops-1] == '(' {
			return 0, errorf(ErrParenMismatch, "parenthesis mismatch: (")
		}
		if err := ev.apply(); err != nil {
			return 0, err
		}
	}

	if ev.ndata != 1 {
		return 0, errorf(ErrMalformed, "no data: stack size is %d", ev.ndata)
	}
	return ev.data[0], nil
}

func opString(op byte) string {
	if op == opNegate {
		return "unary -"
	}
	return string(rune(op))
}
