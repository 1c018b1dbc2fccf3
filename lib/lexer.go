package lib

import (
	"fmt"
	"strconv"
)

type charInfo struct {
	ch       rune
	location charLocation
}

func lex(source string, emit func(token)) error {
	l := newLexer(source, emit)
	return l.scan()
}

type lexer struct {
	source           []rune
	length           int
	currentCharIndex int
	currentLocation  charLocation
	emitCallback     func(token)
}

func newLexer(source string, emit func(token)) *lexer {
	runes := []rune(source)
	return &lexer{
		source:           runes,
		length:           len(runes),
		currentCharIndex: 0,
		currentLocation:  charLocation{line: 1, col: 1},
		emitCallback:     emit,
	}
}

func (l *lexer) peek(offset int) (charInfo, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return charInfo{}, false
	}
	return charInfo{ch: l.source[i], location: l.currentLocation}, true
}

func (l *lexer) advance() (charInfo, bool) {
	info, ok := l.peek(0)
	l.currentCharIndex++
	if info.ch == '\n' {
		l.currentLocation.line++
		l.currentLocation.col = 1
	} else {
		l.currentLocation.col++
	}
	return info, ok
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

func (l *lexer) next() (bool, error) {
	chInfo, ok := l.advance()
	if !ok {
		return false, nil
	}
	ch := chInfo.ch

	switch ch {
	case '+':
		l.emit(token{tokType: tokenTypePlus, value: []rune{ch}, location: chInfo.location})
	case '-':
		l.emit(token{tokType: tokenTypeMinus, value: []rune{ch}, location: chInfo.location})
	case '*':
		l.emit(token{tokType: tokenTypeAsterisk, value: []rune{ch}, location: chInfo.location})
	case '/':
		l.emit(token{tokType: tokenTypeSlash, value: []rune{ch}, location: chInfo.location})
	case '(':
		l.emit(token{tokType: tokenTypeLParen, location: chInfo.location})
	case ')':
		l.emit(token{tokType: tokenTypeRParen, location: chInfo.location})
	case ' ', '\t', '\r', '\n':
		// whitespace is never emitted as a token
	default:
		if isDigit(ch) {
			return true, l.scanNumber(chInfo)
		}
		return false, l.errorf(chInfo.location, "unrecognized character %q", string(ch))
	}

	return true, nil
}

// scanNumber consumes the maximal run of digits starting at first and emits
// one integer token for the whole run.
func (l *lexer) scanNumber(first charInfo) error {
	digits := []rune{first.ch}
	for {
		info, ok := l.peek(0)
		if !ok || !isDigit(info.ch) {
			break
		}
		digits = append(digits, info.ch)
		l.advance()
	}

	number, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return l.errorf(first.location, "integer literal %s out of range", string(digits))
	}

	l.emit(token{
		tokType:  tokenTypeInteger,
		value:    digits,
		number:   number,
		location: first.location,
	})
	return nil
}

func (l *lexer) emit(tok token) {
	l.emitCallback(tok)
}

func (l *lexer) errorf(loc charLocation, msg string, args ...interface{}) error {
	formatted := fmt.Sprintf(msg, args...)
	return fmt.Errorf("Error at line %d:%d: %s", loc.line, loc.col, formatted)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
