package lib

type binaryOpType int

const (
	BinaryOpAdd binaryOpType = iota
	BinaryOpSubtract
	BinaryOpMultiply
	BinaryOpDivide
)

type unaryOpType int

const (
	UnaryOpIdentity unaryOpType = iota
	UnaryOpNegative
)

// Expression is implemented by every AST node. A parse produces a tree:
// each node exclusively owns its children and is never mutated after
// construction.
type Expression interface {
	isExpression()
}

func (n NumberLiteral) isExpression()    {}
func (u UnaryExpression) isExpression()  {}
func (b BinaryExpression) isExpression() {}

type NumberLiteral struct {
	Value int64
}

type UnaryExpression struct {
	Right Expression
	Op    unaryOpType
}

type BinaryExpression struct {
	Left  Expression
	Right Expression
	Op    binaryOpType
}
