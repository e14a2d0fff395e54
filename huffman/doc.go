// Package huffman implements a byte-oriented Huffman entropy coder with
// dynamic tree construction.
//
// The pipeline is:
//
//     raw bytes → CountFrequencies → BuildTree → AssignCodes → Pack
//
// Encode runs all four stages.  Only the encoding direction is provided; the
// CodeTable returned alongside the packed bytes is the only record of the
// code, and the number of meaningful bits must be kept by the caller if the
// padding of the final byte matters.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Canonical_Huffman_code>
//
package huffman
