package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/woozymasta/geoz/internal/config"
	"github.com/woozymasta/geoz/internal/logger"
	"github.com/woozymasta/geoz/internal/processor"
	"github.com/woozymasta/geoz/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"   env:"CONFIG_FILE"    description:"Batch configuration whose outputs are served, optional"`
	Addr       string `short:"a" long:"addr"     env:"LISTEN_ADDRESS" description:"Address to listen on"       default:"0.0.0.0"`
	Port       int    `short:"p" long:"port"     env:"LISTEN_PORT"    description:"Port to listen on"          default:"8080"`
	MaxBody    int64  `short:"b" long:"max-body" env:"MAX_BODY"       description:"Conversion request size limit in bytes" default:"33554432"`
	Minify     bool   `short:"m" long:"minify"   env:"MINIFY"         description:"Compact JSON output by default"`
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

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	var cfg *config.Config
	if opts.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
	}

	srvCtx := server.NewServerContext(cfg, processor.Options{Minify: opts.Minify})
	if opts.MaxBody > 0 {
		srvCtx.MaxBody = opts.MaxBody
	}

	handler := server.RequestLogger(srvCtx.Routes())

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Int("jobs_served", len(srvCtx.JobNames)).
		Int64("max_body", srvCtx.MaxBody).
		Msg("Web server started")

	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
