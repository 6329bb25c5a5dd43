package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/routine-tracker/internal/app"
	"github.com/nhle/routine-tracker/internal/export"
	"github.com/nhle/routine-tracker/internal/logfields"
	"github.com/nhle/routine-tracker/internal/model"
	"github.com/nhle/routine-tracker/internal/progress"
	"github.com/nhle/routine-tracker/internal/store"
	"github.com/nhle/routine-tracker/internal/ui/grid"
)

// resolveMonth picks the flag month, then the configured start month,
// then the current month.
func resolveMonth(flag int, cfg *model.AppConfig) int {
	if flag != 0 {
		return flag
	}
	if cfg.Tracker.StartMonth != 0 {
		return cfg.Tracker.StartMonth
	}
	return model.CurrentMonth(time.Now())
}

// openProgress opens the configured database and hydrates month. A
// ParseError is returned together with a usable store.
func openProgress(
	ctx context.Context,
	cfg *model.AppConfig,
	month int,
	logger *slog.Logger,
) (*store.SQLiteStore, *progress.Store, error) {
	if !model.ValidMonth(month) {
		return nil, nil, fmt.Errorf("month must be 1-12, got %d", month)
	}

	kv, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	p := progress.NewStore(kv, logger)
	if err := p.Hydrate(ctx, month); err != nil {
		var parseErr *progress.ParseError
		if errors.As(err, &parseErr) {
			return kv, p, err
		}
		kv.Close()
		return nil, nil, err
	}
	return kv, p, nil
}

// openStore opens the configured database and logs its schema version.
func openStore(ctx context.Context, cfg *model.AppConfig, logger *slog.Logger) (*store.SQLiteStore, error) {
	kv, err := store.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	version, err := kv.SchemaVersion(ctx)
	if err != nil {
		kv.Close()
		return nil, err
	}
	logger.Debug("Opened progress database", logfields.Path(cfg.Storage.Path), logfields.Schema(version))
	return kv, nil
}

func runTUI(ctx context.Context, cfg *model.AppConfig, logger *slog.Logger) error {
	kv, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer kv.Close()

	logger.Info("Starting TUI", logfields.Path(cfg.Storage.Path))

	m := app.New(progress.NewStore(kv, logger), app.Options{
		VisibleDays: cfg.Display.VisibleDays,
		CellWidth:   cfg.Display.CellWidth,
		StartMonth:  cfg.Tracker.StartMonth,
		Logger:      logger,
	})

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func runShow(ctx context.Context, cfg *model.AppConfig, w io.Writer, month int, logger *slog.Logger) error {
	kv, p, err := openProgress(ctx, cfg, month, logger)
	if kv == nil {
		return err
	}
	defer kv.Close()
	if err != nil {
		// Unreadable data still prints an empty grid.
		logger.Warn("Showing empty month", logfields.Month(month), logfields.Error(err))
	}

	fmt.Fprintf(w, "Monthly Routine Tracker: %s\n", model.MonthName(month))
	fmt.Fprintln(w, grid.Render(grid.RenderOptions{
		FirstDay: 1,
		LastDay:  model.DaysInMonth(month),
		Value:    p.Value,
	}))
	return nil
}

func runSet(
	ctx context.Context,
	cfg *model.AppConfig,
	month, day int,
	taskArg, value string,
	logger *slog.Logger,
) error {
	if !model.ValidMonth(month) {
		return fmt.Errorf("month must be 1-12, got %d", month)
	}
	task, err := resolveTask(taskArg)
	if err != nil {
		return err
	}
	if !model.ValidDay(month, day) {
		return fmt.Errorf("day must be 1-%d for %s, got %d",
			model.DaysInMonth(month), model.MonthName(month), day)
	}

	kv, p, err := openProgress(ctx, cfg, month, logger)
	if kv == nil {
		return err
	}
	defer kv.Close()
	if err != nil {
		// Refuse to overwrite data we could not read.
		return err
	}

	if err := p.Commit(ctx, day, task, value); err != nil {
		return err
	}
	logger.Info("Cell saved", logfields.Month(month), logfields.Day(day), logfields.Task(task))
	return nil
}

// runExport writes the month workbook to out, or to w when out is "-".
func runExport(ctx context.Context, cfg *model.AppConfig, w io.Writer, month int, out string, logger *slog.Logger) error {
	kv, p, err := openProgress(ctx, cfg, month, logger)
	if kv == nil {
		return err
	}
	defer kv.Close()
	if err != nil {
		return err
	}

	if out == "-" {
		return export.WriteWorkbook(w, month, p.Partition())
	}
	if err := export.SaveWorkbook(out, month, p.Partition()); err != nil {
		return err
	}
	logger.Info("Exported month", logfields.Month(month), logfields.Path(out))
	return nil
}

// runMonths lists the months with stored progress and how many cells
// each one has filled in.
func runMonths(ctx context.Context, cfg *model.AppConfig, w io.Writer, logger *slog.Logger) error {
	kv, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer kv.Close()

	p := progress.NewStore(kv, logger)
	months, err := p.StoredMonths(ctx)
	if err != nil {
		return err
	}
	if len(months) == 0 {
		fmt.Fprintln(w, "No progress stored yet.")
		return nil
	}

	for _, month := range months {
		if err := p.Hydrate(ctx, month); err != nil {
			var parseErr *progress.ParseError
			if !errors.As(err, &parseErr) {
				return err
			}
			fmt.Fprintf(w, "%-10s unreadable\n", model.MonthName(month))
			continue
		}
		fmt.Fprintf(w, "%-10s %d cells filled\n", model.MonthName(month), filledCells(p.Partition()))
	}
	return nil
}

func filledCells(p progress.Partition) int {
	n := 0
	for _, tasks := range p {
		for _, v := range tasks {
			if v != "" {
				n++
			}
		}
	}
	return n
}

// runInit writes cfg to path so it can be edited by hand. An existing
// file is kept unless force is set.
func runInit(path string, cfg *model.AppConfig, force bool, logger *slog.Logger) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
	}
	if err := model.SaveConfig(path, cfg); err != nil {
		return err
	}
	logger.Info("Wrote config", logfields.Path(path))
	return nil
}

// resolveTask accepts an exact task name or a 1-based position.
func resolveTask(arg string) (string, error) {
	if model.TaskIndex(arg) >= 0 {
		return arg, nil
	}
	if n, err := strconv.Atoi(arg); err == nil {
		if task, ok := model.TaskAt(n - 1); ok {
			return task, nil
		}
	}
	return "", fmt.Errorf("unknown task %q", arg)
}
