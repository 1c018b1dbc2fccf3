package lib

type tokenReader interface {
	Next() (token, error)
	Peek() (token, error)
}
