package expr

// Operator identifies a binary operator applied to typed expressions.
type Operator uint8

const (
	OpAdd Operator = iota + 1
	OpSub
	OpMul
	OpDiv
	OpConcat
)

var operatorNames = map[Operator]string{
	OpAdd:    "add",
	OpSub:    "sub",
	OpMul:    "mul",
	OpDiv:    "div",
	OpConcat: "concat",
}

func (op Operator) String() string {
	if name, ok := operatorNames[op]; ok {
		return name
	}
	return "op(?)"
}

// Commutative reports whether operand order is irrelevant for op. Inference
// retries a failed lookup with swapped operands only for commutative
// operators.
func Commutative(op Operator) bool {
	switch op {
	case OpAdd, OpMul:
		return true
	default:
		return false
	}
}
