package huffman

// Symbol represents one byte of input, the unit of encoding.
type Symbol byte

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)
