// Package rle implements the run-length transform used as a standalone
// alternative to Huffman coding.
//
// Each maximal run of identical bytes is written as two bytes: the value,
// then the number of times it occurs. The count is a single unsigned byte, so
// a run longer than 255 is split into consecutive pairs for the same value.
// For example:
//
//		WXXXXXXXXXXXXXXXYZZ
//		W 1 X 15 Y 1 Z 2
//
// and a run of 300 "X" is represented as `X 255 X 45`.
//
// Unlike RLE8, a byte that occurs only once still costs two bytes, so data
// with few runs doubles in size. The transform never fails and has no state
// beyond a single call.
package rle
