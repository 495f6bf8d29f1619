package main

import (
	"context"
	"io"
	"os"

	"github.com/woozymasta/geoz/internal/logger"
	"github.com/woozymasta/geoz/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input        string  `short:"i" long:"in"            description:"Input file path or http(s) URL. Reads from stdin if empty"`
	Output       string  `short:"o" long:"out"           description:"Output file path. Writes to stdout if empty"`
	From         string  `short:"f" long:"from"          description:"Input format, inferred from --in when empty" choice:"geojson" choice:"wkt" choice:"wkb" choice:"yaml"`
	To           string  `short:"t" long:"to"            description:"Output format, inferred from --out when empty" choice:"geojson" choice:"wkt" choice:"wkb" choice:"yaml"`
	Minify       bool    `short:"m" long:"minify"        description:"Compact JSON output"`
	Split        bool    `short:"s" long:"split"         description:"Write collection members as separate records"`
	MercatorSize float64 `short:"M" long:"mercator-size" description:"Project planar input on a square world of this size (e.g. 15360) to lon/lat"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	if err := run(opts); err != nil {
		log.Fatal().Err(err).Msg("Conversion failed")
	}
}

func run(opts Options) error {
	if opts.MercatorSize < 0 {
		return errors.New("--mercator-size must be >= 0")
	}

	from, err := processor.ResolveFormat(opts.From, opts.Input)
	if err != nil {
		return errors.Wrap(err, "input format")
	}
	to, err := processor.ResolveFormat(opts.To, opts.Output)
	if err != nil {
		return errors.Wrap(err, "output format")
	}

	// Read Input
	var inputData []byte
	if opts.Input != "" {
		inputData, err = processor.ReadSource(context.Background(), nil, opts.Input)
	} else {
		inputData, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	outputData, err := processor.Convert(inputData, from, to, processor.Options{
		Minify:       opts.Minify,
		Split:        opts.Split,
		MercatorSize: opts.MercatorSize,
	})
	if err != nil {
		return err
	}

	if opts.Output == "" {
		_, err = os.Stdout.Write(outputData)
		return err
	}

	if err := os.WriteFile(opts.Output, outputData, 0644); err != nil {
		return errors.Wrap(err, "write output")
	}

	log.Info().
		Str("from", string(from)).
		Str("to", string(to)).
		Str("out", opts.Output).
		Int("bytes", len(outputData)).
		Msg("Successfully converted")

	return nil
}
