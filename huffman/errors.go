package huffman

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when there are no symbols to build a tree from.
var ErrEmptyInput = errors.New("huffman: empty input")

// ErrUnknownSymbol is matched by errors.Is for every *UnknownSymbolError.
var ErrUnknownSymbol = errors.New("huffman: symbol not in code table")

// UnknownSymbolError reports an input byte that has no entry in the
// CodeTable handed to the packer.
type UnknownSymbolError struct {
	Symbol Symbol
	Offset int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffman: symbol 0x%02x at offset %d not in code table", byte(e.Symbol), e.Offset)
}

func (e *UnknownSymbolError) Unwrap() error {
	return ErrUnknownSymbol
}
