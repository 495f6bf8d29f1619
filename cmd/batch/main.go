package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/woozymasta/geoz/internal/config"
	"github.com/woozymasta/geoz/internal/logger"
	"github.com/woozymasta/geoz/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile   string        `short:"c" long:"config"        env:"CONFIG_FILE"   description:"Path to configuration file" default:"config.yaml"`
	Limit        []string      `short:"l" long:"limit"         env:"LIMIT_NAMES"   description:"Limit processing to specific job names"`
	Concurrency  int           `short:"p" long:"concurrency"   env:"CONCURRENCY"   description:"Concurrency, overrides the configuration file"`
	MercatorSize float64       `short:"M" long:"mercator-size" env:"MERCATOR_SIZE" description:"Project planar input on a square world of this size to lon/lat"`
	Timeout      time.Duration `short:"t" long:"timeout"       env:"HTTP_TIMEOUT"  description:"Timeout for downloading remote inputs" default:"30s"`
	Force        bool          `short:"f" long:"force"         description:"Force overwrite of existing files"`
	Split        bool          `short:"s" long:"split"         description:"Write collection members as separate records"`
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

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	concurrency := cfg.Concurrency
	if opts.Concurrency > 0 {
		concurrency = opts.Concurrency
	}
	if concurrency <= 0 {
		concurrency = 4
	}

	// Filter jobs if limit is set
	jobs, missing := cfg.Select(opts.Limit)
	for _, name := range missing {
		log.Error().
			Str("name", name).
			Msg("Job specified in --limit not found in configuration")
	}

	log.Info().
		Int("jobs_total", len(cfg.Jobs)).
		Int("jobs_queued", len(jobs)).
		Int("concurrency", concurrency).
		Bool("force", opts.Force).
		Msg("Starting batch")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: concurrency,
		},
		Timeout: opts.Timeout,
	}

	start := time.Now()
	results := processor.ProcessJobs(ctx, client, jobs, concurrency, opts.Force, processor.Options{
		Minify:       cfg.Minify,
		Split:        opts.Split,
		MercatorSize: opts.MercatorSize,
	})

	var failed, skipped int
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
		case r.Skipped:
			skipped++
		}
	}

	log.Info().
		Int("converted", len(results)-failed-skipped).
		Int("skipped", skipped).
		Int("failed", failed).
		Dur("duration", time.Since(start)).
		Msg("Batch finished")

	if failed > 0 {
		os.Exit(1)
	}
}
