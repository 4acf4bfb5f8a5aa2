package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/AlisonLuan/bmp2c"
	"github.com/codegangsta/cli"
)

func main() {
	app := cli.NewApp()
	app.Version = bmp2c.Version
	app.Name = "bmp2c"
	app.Usage = "A command-line tool for converting 1-bpp BMP images into C arrays."
	app.UsageText = "1) bmp2c convert [options] input.bmp\n" +
		/*      */ "   2) bmp2c folder [options] dir"
	app.Commands = []cli.Command{
		{
			Name:      "convert",
			Usage:     "Converts a single BMP into a .c file.",
			ArgsUsage: "input.bmp",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "symbol",
					Usage: "`NAME` overrides the C symbol. Defaults to the sanitized file stem.",
				},
				cli.StringFlag{
					Name:  "preview",
					Usage: "`PATH` additionally writes a zoomed PNG preview of the final bitmap.",
				},
			}, commonFlags()...),
			Action: convertAction,
		},
		{
			Name:      "folder",
			Usage:     "Converts every BMP in a folder and emits a combined matrix .c file.",
			ArgsUsage: "dir",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "matrix-basename",
					Usage: "`NAME` overrides the matrix basename. Defaults to the sanitized folder name.",
				},
				cli.BoolFlag{
					Name:  "group-by-size",
					Usage: "Emits a separate matrix per image size. This is the default behavior.",
				},
				cli.BoolFlag{
					Name:  "fail-on-mixed-sizes",
					Usage: "Fails instead of grouping when image sizes differ after edits.",
				},
			}, commonFlags()...),
			Action: folderAction,
		},
	}
	app.Action = func(c *cli.Context) {
		cli.ShowAppHelp(c)
		os.Exit(1)
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func commonFlags() []cli.Flag {
	return append([]cli.Flag{
		cli.StringFlag{
			Name:  "out-dir",
			Usage: "`DIR` receives the generated files. Defaults next to the input.",
		},
		cli.BoolFlag{
			Name:  "emit-dims",
			Usage: "Appends width/height #define macros to the generated file.",
		},
		cli.IntFlag{
			Name:  "values-per-line",
			Usage: "`N` hex values per line in generated arrays.",
			Value: bmp2c.DefaultValuesPerLine,
		},
		cli.StringFlag{
			Name:  "pack",
			Usage: "`MODE` = row packs row-major, LSB-first. MODE = page packs vertical 8px pages (SSD1306-style).",
			Value: "row",
		},
		cli.StringFlag{
			Name:  "sort",
			Usage: "`ORDER` = alpha sorts case-insensitively. ORDER = natural sorts img2 before img10.",
			Value: "alpha",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Logs each file as it is written.",
		},
	}, editFlags()...)
}

func editFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "fit",
			Usage: "`FIT` = 128,64 scales the image down to fit 128x64 pixels, keeping aspect.",
		},
		cli.BoolFlag{
			Name:  "invert",
			Usage: "Inverts the image (black becomes white).",
		},
		cli.BoolFlag{
			Name:  "flip-h",
			Usage: "Flips the image horizontally.",
		},
		cli.BoolFlag{
			Name:  "flip-v",
			Usage: "Flips the image vertically.",
		},
		cli.IntFlag{
			Name:  "rotate",
			Usage: "`DEG` rotates the image clockwise by 90, 180 or 270 degrees.",
		},
		cli.BoolFlag{
			Name:  "trim",
			Usage: "Trims all-white rows and columns from the edges.",
		},
		cli.IntFlag{
			Name:  "pad-left",
			Usage: "`N` adds white pixel columns on the left.",
		},
		cli.IntFlag{
			Name:  "pad-right",
			Usage: "`N` adds white pixel columns on the right.",
		},
		cli.IntFlag{
			Name:  "pad-top",
			Usage: "`N` adds white pixel rows on top.",
		},
		cli.IntFlag{
			Name:  "pad-bottom",
			Usage: "`N` adds white pixel rows at the bottom.",
		},
		cli.StringSliceFlag{
			Name:  "draw",
			Usage: "`PIXEL` = x,y,set or x,y,clear forces a single pixel. May be repeated.",
		},
	}
}

func convertAction(c *cli.Context) {
	if len(c.Args()) != 1 {
		exit("usage: bmp2c convert [options] input.bmp", 1)
	}
	opts := buildOptions(c)
	opts.Symbol = c.String("symbol")
	opts.PreviewPath = c.String("preview")
	if _, err := bmp2c.Convert(c.Args().First(), opts); err != nil {
		exit(err.Error(), 2)
	}
}

func folderAction(c *cli.Context) {
	if len(c.Args()) != 1 {
		exit("usage: bmp2c folder [options] dir", 1)
	}
	if c.Bool("group-by-size") && c.Bool("fail-on-mixed-sizes") {
		exit("--group-by-size and --fail-on-mixed-sizes are mutually exclusive", 1)
	}
	opts := buildOptions(c)
	opts.MatrixBase = c.String("matrix-basename")
	opts.FailOnMixedSizes = c.Bool("fail-on-mixed-sizes")
	if _, err := bmp2c.ConvertFolder(c.Args().First(), opts); err != nil {
		exit(err.Error(), 2)
	}
}

func buildOptions(c *cli.Context) bmp2c.Options {
	opts := bmp2c.Options{
		OutDir:        c.String("out-dir"),
		EmitDims:      c.Bool("emit-dims"),
		ValuesPerLine: c.Int("values-per-line"),
		Mode:          bmp2c.PackMode(c.String("pack")),
		Sort:          bmp2c.SortKind(c.String("sort")),
		Edits:         buildEdits(c),
	}
	if c.Bool("verbose") {
		opts.Logger = slog.Default()
	}
	return opts
}

func buildEdits(c *cli.Context) bmp2c.Edits {
	edits := bmp2c.Edits{
		Invert:    c.Bool("invert"),
		FlipH:     c.Bool("flip-h"),
		FlipV:     c.Bool("flip-v"),
		Rotate:    c.Int("rotate"),
		Trim:      c.Bool("trim"),
		PadLeft:   c.Int("pad-left"),
		PadRight:  c.Int("pad-right"),
		PadTop:    c.Int("pad-top"),
		PadBottom: c.Int("pad-bottom"),
	}
	if c.IsSet("fit") {
		parts := strings.Split(c.String("fit"), ",")
		if len(parts) != 2 {
			exit("fit option must be comma separated, like 128,64", 2)
		}
		w, errW := strconv.Atoi(strings.Trim(parts[0], " "))
		h, errH := strconv.Atoi(strings.Trim(parts[1], " "))
		if errW != nil || errH != nil || w < 1 || h < 1 {
			exit(fmt.Sprintf("invalid fit size: %q", c.String("fit")), 2)
		}
		edits.FitWidth, edits.FitHeight = w, h
	}
	for _, s := range c.StringSlice("draw") {
		d, err := bmp2c.ParseDraw(s)
		if err != nil {
			exit(err.Error(), 2)
		}
		edits.Draws = append(edits.Draws, d)
	}
	return edits
}

func exit(msg string, code int) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}
