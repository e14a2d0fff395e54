package main

import (
	"fmt"
	"os"

	"github.com/ashishtyagi009/Image-Compression/huffman"
	"github.com/ashishtyagi009/Image-Compression/internal/logger"
	"github.com/ashishtyagi009/Image-Compression/rle"
	"github.com/urfave/cli/v2"
)

const (
	methodHuffman = "huffman"
	methodRLE     = "rle"
)

func encodeFile(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return fmt.Errorf("expected INPUT and OUTPUT, got %d argument(s)", ctx.NArg())
	}
	inPath, outPath := ctx.Args().Get(0), ctx.Args().Get(1)
	lg := logger.NewWriter(ctx.App.ErrWriter)

	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	var encoded []byte
	switch method := ctx.String("method"); method {
	case methodRLE:
		encoded = rle.Encode(data)

	case methodHuffman:
		encode := huffman.Encode
		if ctx.Bool("canonical") {
			encode = huffman.EncodeCanonical
		}
		result, err := encode(data)
		if err != nil {
			return fmt.Errorf("%s: %w", inPath, err)
		}
		if ctx.Bool("dump") {
			var e huffman.Encoder
			e.InitTable(result.Table)
			if _, err := e.Dump(ctx.App.ErrWriter); err != nil {
				return err
			}
		}
		lg.Infof("%s: %d bits, %d padding bit(s)", inPath, result.Bits, result.Padding())
		encoded = result.Data

	default:
		return fmt.Errorf("unknown method %q, expected %q or %q", method, methodHuffman, methodRLE)
	}

	if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
		return err
	}
	lg.Infof("%s: %d -> %d bytes", inPath, len(data), len(encoded))
	return nil
}
