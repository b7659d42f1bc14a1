package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"weblog-stats/internal/app"
	"weblog-stats/internal/reporters"
	"weblog-stats/internal/shared/configs"

	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("weblog-report", pflag.ExitOnError)
	configPath := flags.StringP("config", "c", "./configs/configs.yml", "path to the YAML config file")
	format := flags.StringP("format", "f", reporters.FormatText, "report format: text, json or chart")
	export := flags.Bool("export", false, "also write the report as JSON to the report directory")
	generate := flags.Int("generate", 0, "first write a synthetic access log with this many entries")
	generateKey := flags.String("generate-key", "logs/weblog.txt", "storage key of the generated access log")
	year := flags.Int("year", 2015, "year of the generated entries")
	seed := flags.Uint64("seed", 1, "random seed of the generated entries")
	watch := flags.BoolP("watch", "w", false, "print a new report whenever the input log files change")
	printData := flags.Bool("print-data", false, "print every parsed log entry instead of a report")
	_ = flags.Parse(os.Args[1:])

	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, application, *format, *export, *watch, *printData, *generate, *generateKey, *year, *seed); err != nil {
		_ = application.Close()
		fmt.Fprintf(os.Stderr, "Report failed: %v\n", err)
		os.Exit(1)
	}
	_ = application.Close()
}

func run(ctx context.Context, application *app.App, format string, export, watch, printData bool, generate int, generateKey string, year int, seed uint64) error {
	if generate > 0 {
		if err := application.Generate(ctx, generateKey, generate, year, seed); err != nil {
			return err
		}
	}
	if printData {
		return application.PrintData(ctx, os.Stdout)
	}
	if watch {
		return application.Watch(ctx, os.Stdout, format)
	}
	return application.Report(ctx, os.Stdout, format, export)
}
