package lib

import "fmt"

type tokenType int

const (
	tokenTypeInteger tokenType = iota
	tokenTypePlus
	tokenTypeMinus
	tokenTypeAsterisk
	tokenTypeSlash
	tokenTypeLParen
	tokenTypeRParen
	tokenTypeEOF
)

type charLocation struct {
	line int
	col  int
}

// value holds the literal text of the token (the digits of an integer, the
// operator character). number is the parsed value and is only meaningful for
// tokenTypeInteger.
type token struct {
	tokType  tokenType
	value    []rune
	number   int64
	location charLocation
}

func tokenTypeString(tokType tokenType) string {
	switch tokType {
	case tokenTypeInteger:
		return "INTEGER"
	case tokenTypePlus:
		return "+"
	case tokenTypeMinus:
		return "-"
	case tokenTypeAsterisk:
		return "*"
	case tokenTypeSlash:
		return "/"
	case tokenTypeLParen:
		return "("
	case tokenTypeRParen:
		return ")"
	case tokenTypeEOF:
		return "EOF"
	default:
		return "?"
	}
}

func tokenString(tok token) string {
	if tok.tokType == tokenTypeEOF {
		return "EOF"
	}
	return fmt.Sprintf(
		"%d:%d -> %s",
		tok.location.line,
		tok.location.col,
		tokenValueString(tok))
}

func tokenValueString(tok token) string {
	if tok.tokType == tokenTypeInteger {
		return fmt.Sprintf("integer: %s", string(tok.value))
	}
	return tokenTypeString(tok.tokType)
}
