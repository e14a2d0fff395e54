package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "imgcompress",
		Usage: "Compare lossy, lossless, run-length and Huffman compression of images",
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Usage:     "Re-encode images and report the size of every compression path",
				Action:    compressImages,
				ArgsUsage: "IMAGE...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out-dir",
						Aliases: []string{"o"},
						Usage:   "directory for the re-encoded images",
						Value:   ".",
						EnvVars: []string{"IMGCOMPRESS_OUT_DIR"},
					},
					&cli.IntFlag{
						Name:    "quality",
						Usage:   "JPEG quality, 1-100",
						Value:   50,
						EnvVars: []string{"IMGCOMPRESS_QUALITY"},
					},
					&cli.IntFlag{
						Name:    "max-width",
						Usage:   "maximum width of the preview image",
						Value:   800,
						EnvVars: []string{"IMGCOMPRESS_MAX_WIDTH"},
					},
					&cli.IntFlag{
						Name:    "max-height",
						Usage:   "maximum height of the preview image",
						Value:   600,
						EnvVars: []string{"IMGCOMPRESS_MAX_HEIGHT"},
					},
					&cli.StringFlag{
						Name:    "report",
						Usage:   "write the sizes as CSV to this file",
						EnvVars: []string{"IMGCOMPRESS_REPORT"},
					},
				},
			},
			{
				Name:      "encode",
				Usage:     "Run one transform over the bytes of a file",
				Action:    encodeFile,
				ArgsUsage: "INPUT OUTPUT",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "method",
						Aliases: []string{"m"},
						Usage:   "transform to apply: huffman or rle",
						Value:   methodHuffman,
						EnvVars: []string{"IMGCOMPRESS_METHOD"},
					},
					&cli.BoolFlag{
						Name:    "canonical",
						Usage:   "pack with the canonical Huffman code",
						EnvVars: []string{"IMGCOMPRESS_CANONICAL"},
					},
					&cli.BoolFlag{
						Name:    "dump",
						Usage:   "print the Huffman code table to stderr",
						EnvVars: []string{"IMGCOMPRESS_DUMP"},
					},
				},
			},
		},
	}
}
