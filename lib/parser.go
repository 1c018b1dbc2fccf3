package lib

// Parse turns one line of source text into the root node of its AST. The
// lexer runs in its own goroutine and streams tokens through a buffer; the
// parser pulls them with a single token of lookahead. The grammar:
//
//	expr   := term ((PLUS | MINUS) term)*
//	term   := factor ((ASTERISK | SLASH) factor)*
//	factor := (PLUS | MINUS) factor | INTEGER | LPAREN expr RPAREN
//
// expr and term fold left-to-right, so equal-precedence operators are
// left-associative.
func Parse(input string) (Expression, error) {
	buffer := newTokenBuffer()
	p := parser{reader: buffer}

	go (func() {
		buffer.Done(lex(input, buffer.Write))
	})()

	expr, err := p.scanExpr()
	if err != nil {
		return nil, err
	}

	// The whole line must be one expression ("2 2" is not).
	if _, err := p.eat(tokenTypeEOF); err != nil {
		return nil, err
	}

	return expr, nil
}

type parser struct {
	reader tokenReader
}

// eat consumes and returns the lookahead token when its kind matches one of
// expected; otherwise the parse fails with a SyntaxError naming what was
// expected and what was found.
func (p *parser) eat(expected ...tokenType) (token, error) {
	tok, err := p.reader.Peek()
	if err != nil {
		return token{}, err
	}

	for _, tokType := range expected {
		if tok.tokType == tokType {
			_, err = p.reader.Next()
			return tok, err
		}
	}

	return token{}, &SyntaxError{Expected: expected, Got: tok}
}

func (p *parser) scanExpr() (Expression, error) {
	left, err := p.scanTerm()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.reader.Peek()
		if err != nil {
			return nil, err
		}
		if tok.tokType != tokenTypePlus && tok.tokType != tokenTypeMinus {
			break
		}

		op, err := p.eat(tokenTypePlus, tokenTypeMinus)
		if err != nil {
			return nil, err
		}

		right, err := p.scanTerm()
		if err != nil {
			return nil, err
		}

		left = BinaryExpression{
			Left:  left,
			Right: right,
			Op:    binaryOpFor(op.tokType),
		}
	}

	return left, nil
}

func (p *parser) scanTerm() (Expression, error) {
	left, err := p.scanFactor()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.reader.Peek()
		if err != nil {
			return nil, err
		}
		if tok.tokType != tokenTypeAsterisk && tok.tokType != tokenTypeSlash {
			break
		}

		op, err := p.eat(tokenTypeAsterisk, tokenTypeSlash)
		if err != nil {
			return nil, err
		}

		right, err := p.scanFactor()
		if err != nil {
			return nil, err
		}

		left = BinaryExpression{
			Left:  left,
			Right: right,
			Op:    binaryOpFor(op.tokType),
		}
	}

	return left, nil
}

func (p *parser) scanFactor() (Expression, error) {
	tok, err := p.reader.Peek()
	if err != nil {
		return nil, err
	}

	switch tok.tokType {
	case tokenTypeInteger:
		num, err := p.eat(tokenTypeInteger)
		if err != nil {
			return nil, err
		}
		return NumberLiteral{Value: num.number}, nil

	case tokenTypePlus, tokenTypeMinus:
		op, err := p.eat(tokenTypePlus, tokenTypeMinus)
		if err != nil {
			return nil, err
		}
		operand, err := p.scanFactor()
		if err != nil {
			return nil, err
		}
		return UnaryExpression{Right: operand, Op: unaryOpFor(op.tokType)}, nil

	case tokenTypeLParen:
		if _, err := p.eat(tokenTypeLParen); err != nil {
			return nil, err
		}
		inner, err := p.scanExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(tokenTypeRParen); err != nil {
			return nil, err
		}
		return inner, nil
	}

	return nil, &SyntaxError{
		Expected: []tokenType{tokenTypeInteger, tokenTypePlus, tokenTypeMinus, tokenTypeLParen},
		Got:      tok,
	}
}

func binaryOpFor(tokType tokenType) binaryOpType {
	switch tokType {
	case tokenTypePlus:
		return BinaryOpAdd
	case tokenTypeMinus:
		return BinaryOpSubtract
	case tokenTypeAsterisk:
		return BinaryOpMultiply
	default:
		return BinaryOpDivide
	}
}

func unaryOpFor(tokType tokenType) unaryOpType {
	if tokType == tokenTypeMinus {
		return UnaryOpNegative
	}
	return UnaryOpIdentity
}
