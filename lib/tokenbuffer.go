package lib

import (
	"errors"
	"time"
)

const TOKEN_BUF_SIZE = 100

var TokenReadTimeout = 1 * time.Second

// eofToken is what readers receive forever once the stream is exhausted, so
// the parser can inspect end-of-input repeatedly without special casing.
var eofToken = token{tokType: tokenTypeEOF}

type peekResult struct {
	tok token
	err error
}

// tokenBuffer connects the lexer goroutine to the parser: the lexer writes
// tokens in, the parser pulls them out with one token of lookahead. Done
// carries the lexer's terminal error (nil on clean end of input); after it is
// received every further read yields either that error or eofToken.
type tokenBuffer struct {
	tokChan      chan token
	doneChan     chan error
	peeked       *peekResult
	doneReceived bool
	finalErr     error
}

func newTokenBuffer() *tokenBuffer {
	return &tokenBuffer{
		tokChan:      make(chan token, TOKEN_BUF_SIZE),
		doneChan:     make(chan error, 1),
		peeked:       nil,
		doneReceived: false,
	}
}

func (tb *tokenBuffer) Next() (token, error) {
	if tb.peeked != nil {
		res := tb.peeked
		tb.peeked = nil
		return res.tok, res.err
	}

	timeout := TokenReadTimeout
	if tb.doneReceived {
		timeout = 0
	}

	select {
	case tok := <-tb.tokChan:
		return tok, nil
	case err := <-tb.doneChan:
		tb.doneReceived = true
		tb.finalErr = err
		return tb.Next()
	case <-time.After(timeout):
		if tb.doneReceived {
			if tb.finalErr != nil {
				return token{}, tb.finalErr
			}
			return eofToken, nil
		}
		return token{}, errors.New("timed out waiting for next token")
	}
}

func (tb *tokenBuffer) Peek() (token, error) {
	if tb.peeked != nil {
		return tb.peeked.tok, tb.peeked.err
	}
	tok, err := tb.Next()
	tb.peeked = &peekResult{tok: tok, err: err}
	return tok, err
}

func (tb *tokenBuffer) Write(tok token) {
	tb.tokChan <- tok
}

func (tb *tokenBuffer) Done(err error) {
	tb.doneChan <- err
}
