package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/nhle/routine-tracker/internal/logfields"
	"github.com/nhle/routine-tracker/internal/logging"
	"github.com/nhle/routine-tracker/internal/model"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" type:"path"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	TUI struct{} `cmd:"" default:"1" name:"tui" help:"Open the interactive routine grid (default)"`

	Show struct {
		Month int `short:"m" help:"Month to print (1-12, default current)"`
	} `cmd:"" help:"Print a month's grid"`

	Set struct {
		Month int    `short:"m" help:"Month (1-12, default current)"`
		Day   int    `short:"d" required:"" help:"Day of the month"`
		Task  string `short:"t" required:"" help:"Task name or 1-based position"`
		Value string `help:"Status text; empty clears the cell"`
	} `cmd:"" help:"Set one cell without opening the grid"`

	Export struct {
		Month int    `short:"m" help:"Month to export (1-12, default current)"`
		Out   string `short:"o" required:"" help:"Destination .xlsx file, or - for stdout"`
	} `cmd:"" help:"Export a month to an Excel workbook"`

	Months struct{} `cmd:"" help:"List months with stored progress"`

	Init struct {
		Force bool `short:"f" help:"Overwrite an existing config file"`
	} `cmd:"" help:"Write the current configuration to the config file"`
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "loading .env: %v\n", err)
	}

	ctx := kong.Parse(&CLI,
		kong.Name("routinetracker"),
		kong.Description("Monthly routine tracker."),
	)

	configPath := CLI.Config
	if configPath == "" {
		configPath = model.DefaultConfigPath()
	}
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := logging.ParseLevel(cfg.Log.Level)
	if CLI.Verbose {
		level = slog.LevelDebug
	}

	if ctx.Command() == "tui" {
		// The TUI owns the terminal, so logs go to the configured file.
		w, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer w.Close()
		logger := logging.New(w, level)
		slog.SetDefault(logger)

		if err := runTUI(context.Background(), cfg, logger); err != nil {
			logger.Error("TUI failed", logfields.Error(err))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			w.Close()
			os.Exit(1)
		}
		return
	}

	logger := logging.New(os.Stderr, level)
	slog.SetDefault(logger)

	background := context.Background()
	switch ctx.Command() {
	case "show":
		err = runShow(background, cfg, os.Stdout, resolveMonth(CLI.Show.Month, cfg), logger)
	case "set":
		err = runSet(background, cfg, resolveMonth(CLI.Set.Month, cfg), CLI.Set.Day, CLI.Set.Task, CLI.Set.Value, logger)
	case "export":
		err = runExport(background, cfg, os.Stdout, resolveMonth(CLI.Export.Month, cfg), CLI.Export.Out, logger)
	case "months":
		err = runMonths(background, cfg, os.Stdout, logger)
	case "init":
		err = runInit(configPath, cfg, CLI.Init.Force, logger)
	default:
		err = fmt.Errorf("unknown command %q", ctx.Command())
	}
	if err != nil {
		slog.Error("Command failed", logfields.Command(ctx.Command()), logfields.Error(err))
		os.Exit(1)
	}
}
