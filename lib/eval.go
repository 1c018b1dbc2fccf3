package lib

import "fmt"

// Evaluate walks the tree post-order and computes its integer value. The
// switch is exhaustive over the node types Parse can build; hitting the
// fallthrough error means a new node type was added without updating this
// function.
func Evaluate(node Expression) (int64, error) {
	switch n := node.(type) {
	case NumberLiteral:
		return n.Value, nil

	case UnaryExpression:
		value, err := Evaluate(n.Right)
		if err != nil {
			return 0, err
		}
		if n.Op == UnaryOpNegative {
			return -value, nil
		}
		return value, nil

	case BinaryExpression:
		left, err := Evaluate(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(n.Right)
		if err != nil {
			return 0, err
		}
		return applyBinaryOp(n.Op, left, right)
	}

	return 0, fmt.Errorf("unhandled expression node %T", node)
}

func applyBinaryOp(op binaryOpType, left int64, right int64) (int64, error) {
	switch op {
	case BinaryOpAdd:
		return left + right, nil
	case BinaryOpSubtract:
		return left - right, nil
	case BinaryOpMultiply:
		return left * right, nil
	case BinaryOpDivide:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return floorDiv(left, right), nil
	}
	return 0, fmt.Errorf("unhandled binary operator %d", op)
}

// floorDiv rounds the quotient toward negative infinity. Go's native
// division truncates toward zero; the two differ when exactly one operand is
// negative and the division is inexact.
func floorDiv(a int64, b int64) int64 {
	quotient := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		quotient--
	}
	return quotient
}
