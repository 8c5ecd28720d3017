package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/woozymasta/geojson/internal/config"
	"github.com/woozymasta/geojson/internal/geo"
	"github.com/woozymasta/geojson/internal/logger"
	"github.com/woozymasta/geojson/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile  string   `short:"c" long:"config"      env:"CONFIG_FILE"  description:"Path to configuration file"`
	Input       []string `short:"i" long:"in"          description:"Input file, URL or - for stdin (repeatable)" default:"-"`
	Output      string   `short:"o" long:"out"         description:"Output file path. Writes to stdout if empty"`
	Format      string   `short:"f" long:"format"      description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Indent      *int     `long:"indent"                description:"Indentation width, 0 for compact JSON"`
	Orientation string   `long:"orientation"           env:"ORIENTATION"  description:"Ring winding policy" choice:"ignore" choice:"warn" choice:"reject"`
	Report      bool     `short:"r" long:"report"      description:"Print a report instead of the normalized document"`
	Quiet       bool     `short:"q" long:"quiet"       description:"Validate only, write nothing"`
	AllowRemote bool     `long:"allow-remote"          env:"ALLOW_REMOTE" description:"Allow http(s) inputs"`
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
	if opts.Orientation != "" {
		if cfg.Orientation, err = config.ParseOrientation(opts.Orientation); err != nil {
			log.Fatal().Err(err).Msg("Invalid orientation")
		}
	}
	if opts.Indent != nil {
		cfg.Indent = *opts.Indent
	}
	cfg.AllowRemote = cfg.AllowRemote || opts.AllowRemote
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	if opts.Output != "" && len(opts.Input) > 1 {
		log.Fatal().Msg("--out requires a single input")
	}

	var client *http.Client
	if cfg.AllowRemote {
		client = &http.Client{
			Transport: &http.Transport{
				TLSNextProto: make(map[string]func(string, *tls.Conn) http.RoundTripper),
			},
			Timeout: cfg.FetchTimeout,
		}
	}

	failed := 0
	for _, source := range opts.Input {
		out, err := lint(context.Background(), client, source, cfg, opts)
		if err != nil {
			failed++
			event := log.Error().Err(err).Str("source", source)
			var ve *geo.ValidationError
			if errors.As(err, &ve) && ve.Path != "" {
				event = event.Str("path", ve.Path)
			}
			event.Msg("Document is not valid")
			continue
		}
		if opts.Quiet {
			continue
		}

		if opts.Output != "" {
			if err := os.WriteFile(opts.Output, out, 0o644); err != nil {
				log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write output")
			}
			log.Info().Str("path", opts.Output).Str("format", opts.Format).Msg("Document written")
			continue
		}
		fmt.Println(string(out))
	}

	if failed > 0 {
		log.Error().Int("failed", failed).Int("total", len(opts.Input)).Msg("Validation failed")
		os.Exit(1)
	}
}

// lint loads, validates and renders one source.
func lint(ctx context.Context, client *http.Client, source string, cfg *config.Config, opts Options) ([]byte, error) {
	data, err := processor.Load(ctx, client, source, cfg.MaxBodyBytes)
	if err != nil {
		return nil, err
	}

	report, err := processor.Process(data, cfg)
	if err != nil {
		return nil, err
	}

	for _, issue := range report.Issues {
		log.Warn().
			Str("source", source).
			Str("path", issue.Path).
			Str("role", issue.Role).
			Float64("signed_area", issue.SignedArea).
			Msg("Ring has the wrong winding order")
	}

	log.Info().
		Str("source", source).
		Str("type", report.Type.String()).
		Int("features", report.Features).
		Int("polygons", report.Polygons).
		Floats64("bbox", report.BBox).
		Int("issues", len(report.Issues)).
		Msg("Document is valid")

	if opts.Report {
		return processor.EncodeReport(report, opts.Format, cfg.Indent)
	}
	return processor.Encode(report.Object, opts.Format, cfg.Indent)
}
