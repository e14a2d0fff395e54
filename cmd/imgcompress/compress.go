package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ashishtyagi009/Image-Compression/internal/imaging"
	"github.com/ashishtyagi009/Image-Compression/internal/logger"
	"github.com/ashishtyagi009/Image-Compression/internal/report"
	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"
)

type compressConfig struct {
	OutDir    string
	Quality   int
	MaxWidth  int
	MaxHeight int
}

func compressImages(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("no images given")
	}

	cfg := compressConfig{
		OutDir:    ctx.String("out-dir"),
		Quality:   ctx.Int("quality"),
		MaxWidth:  ctx.Int("max-width"),
		MaxHeight: ctx.Int("max-height"),
	}
	if cfg.MaxWidth < 1 || cfg.MaxHeight < 1 {
		return fmt.Errorf("preview bounds must be positive, got %dx%d", cfg.MaxWidth, cfg.MaxHeight)
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return err
	}

	lg := logger.NewWriter(ctx.App.ErrWriter)

	var result *multierror.Error
	rows := make([]report.Row, 0, ctx.NArg())
	for _, path := range ctx.Args().Slice() {
		row, err := compressImage(cfg, path, lg)
		if err != nil {
			lg.Errorf("%s: %v", path, err)
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
			continue
		}
		printRow(ctx.App.Writer, row)
		rows = append(rows, row)
	}

	if reportPath := ctx.String("report"); reportPath != "" && len(rows) != 0 {
		if err := writeReport(reportPath, rows); err != nil {
			result = multierror.Append(result, err)
		} else {
			lg.Infof("wrote report for %d image(s) to %s", len(rows), reportPath)
		}
	}

	return result.ErrorOrNil()
}

func compressImage(cfg compressConfig, path string, lg logger.Logger) (report.Row, error) {
	row := report.NewRow(filepath.Base(path))

	size, err := imaging.FileSize(path)
	if err != nil {
		return row, err
	}
	row.OriginalSize = size

	img, err := imaging.Load(path)
	if err != nil {
		return row, err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	lossyPath := filepath.Join(cfg.OutDir, base+"_compressed.jpg")
	losslessPath := filepath.Join(cfg.OutDir, base+"_lossless.png")
	previewPath := filepath.Join(cfg.OutDir, base+"_preview.png")

	if err := imaging.WriteJPEG(lossyPath, img, cfg.Quality); err != nil {
		return row, err
	}
	if row.LossySize, err = imaging.FileSize(lossyPath); err != nil {
		return row, err
	}

	if err := imaging.WritePNG(losslessPath, img); err != nil {
		return row, err
	}
	if row.LosslessSize, err = imaging.FileSize(losslessPath); err != nil {
		return row, err
	}

	if err := imaging.WritePNG(previewPath, imaging.ResizeToFit(img, cfg.MaxWidth, cfg.MaxHeight)); err != nil {
		return row, err
	}
	lg.Infof("%s: wrote %s, %s and %s", path, lossyPath, losslessPath, previewPath)

	if err := row.Measure(imaging.Pixels(img)); err != nil {
		return row, err
	}
	return row, nil
}

func printRow(w io.Writer, row report.Row) {
	fmt.Fprintf(w, "%s\n", row.Name)
	fmt.Fprintf(w, "  original file:     %d bytes\n", row.OriginalSize)
	fmt.Fprintf(w, "  jpeg:              %d bytes\n", row.LossySize)
	fmt.Fprintf(w, "  png:               %d bytes\n", row.LosslessSize)
	fmt.Fprintf(w, "  raw pixels:        %d bytes\n", row.PixelSize)
	fmt.Fprintf(w, "  run-length:        %d bytes (%.3f)\n", row.RLESize, row.Ratio(row.RLESize))
	fmt.Fprintf(w, "  huffman:           %d bytes, %d bits (%.3f)\n", row.HuffmanSize, row.HuffmanBits, row.Ratio(row.HuffmanSize))
	fmt.Fprintf(w, "  zstd:              %d bytes (%.3f)\n", row.ZstdSize, row.Ratio(row.ZstdSize))
}

func writeReport(path string, rows []report.Row) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteCSV(out, rows); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}
