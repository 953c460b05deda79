package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/annealtsp/runstore"
	"github.com/katalvlaran/annealtsp/tsp"
	"github.com/katalvlaran/annealtsp/tspfile"
)

// progressEvery is the iteration stride of -v progress lines.
const progressEvery = 1000

type config struct {
	file    string
	opts    tsp.Options
	init    string
	dbPath  string
	history int
	summary bool
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	cfg := config{opts: tsp.DefaultOptions()}

	fs := flag.NewFlagSet("tspanneal", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.file, "file", "", "city file (prompted for when empty)")
	fs.IntVar(&cfg.opts.MaxIterations, "iterations", cfg.opts.MaxIterations, "number of annealing iterations")
	fs.Float64Var(&cfg.opts.InitialTemp, "temp", cfg.opts.InitialTemp, "initial temperature")
	fs.Float64Var(&cfg.opts.CoolingRate, "cooling", cfg.opts.CoolingRate, "geometric cooling rate in (0,1]")
	fs.Float64Var(&cfg.opts.MinTemperature, "min-temp", cfg.opts.MinTemperature, "stop once the temperature falls below this (0 disables)")
	fs.StringVar(&cfg.init, "init", cfg.opts.Init.String(), "initial tour: random or nearest")
	fs.BoolVar(&cfg.opts.Polish, "polish", false, "apply 2-opt local search to the best tour")
	fs.Int64Var(&cfg.opts.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.StringVar(&cfg.dbPath, "db", "", "SQLite file to record runs in")
	fs.IntVar(&cfg.history, "history", 0, "print the newest N recorded runs from -db and exit")
	fs.BoolVar(&cfg.summary, "summary", false, "print run statistics after the tour")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging with progress")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	strategy, err := tsp.ParseInitStrategy(cfg.init)
	if err != nil {
		return config{}, err
	}
	cfg.opts.Init = strategy

	if cfg.history < 0 {
		return config{}, errors.New("-history must be ≥ 0")
	}
	if cfg.history > 0 && cfg.dbPath == "" {
		return config{}, errors.New("-history requires -db")
	}

	return cfg, cfg.opts.Validate()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger := newLogger(stderr, cfg.verbose)

	if cfg.history > 0 {
		return printHistory(ctx, stdout, cfg.dbPath, cfg.history)
	}

	if cfg.file == "" {
		if cfg.file, err = promptFilename(stdin, stdout); err != nil {
			return err
		}
	}

	points, err := tspfile.ReadFile(cfg.file)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		logger.Warn("no cities read", "file", cfg.file)
	}

	if cfg.opts.Seed == 0 {
		cfg.opts.Seed = time.Now().UnixNano()
	}
	logger.Info("annealing",
		"file", cfg.file,
		"cities", len(points),
		"seed", cfg.opts.Seed,
		"options", runstore.OptionsSummary(cfg.opts))

	if cfg.verbose {
		cfg.opts.OnStep = func(st tsp.Step) {
			if st.Iteration%progressEvery != 0 {
				return
			}
			logger.Debug("progress",
				"iteration", st.Iteration,
				"temperature", st.Temperature,
				"current", st.CurrentCost,
				"best", st.BestCost)
		}
	}

	start := time.Now()
	res, err := tsp.Solve(points, cfg.opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	logger.Debug("annealing done",
		"iterations", res.Stats.Iterations,
		"accepted", res.Stats.Accepted,
		"improvements", res.Stats.Improvements,
		"polish_moves", res.Stats.PolishMoves,
		"elapsed", elapsed)

	if err := tspfile.WriteReport(stdout, points, res); err != nil {
		return err
	}
	if cfg.summary {
		if err := tspfile.WriteSummary(stdout, points, res, elapsed); err != nil {
			return err
		}
	}

	if cfg.dbPath == "" {
		return nil
	}
	return saveRun(ctx, logger, cfg, points, res)
}

func promptFilename(stdin io.Reader, stdout io.Writer) (string, error) {
	fmt.Fprint(stdout, "Enter the TSP filename: ")
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	name := strings.TrimSpace(line)
	if name == "" {
		return "", errors.New("no filename given")
	}
	return name, nil
}

func saveRun(ctx context.Context, logger *slog.Logger, cfg config, points []tsp.Point, res tsp.Result) error {
	store, err := runstore.Open(ctx, cfg.dbPath)
	if err != nil {
		return fmt.Errorf("open run store: %w", err)
	}
	defer store.Close()

	rec := runstore.NewRun(cfg.file, cfg.opts.Seed, cfg.opts, res, tspfile.ExternalIDs(points, res.Tour))
	if err := store.SaveRun(ctx, rec); err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	logger.Info("run recorded", "id", rec.ID, "db", cfg.dbPath)
	return nil
}

func printHistory(ctx context.Context, w io.Writer, dbPath string, limit int) error {
	store, err := runstore.Open(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("open run store: %w", err)
	}
	defer store.Close()

	runs, err := store.ListRuns(ctx, limit)
	if err != nil {
		return err
	}
	for _, r := range runs {
		_, err := fmt.Fprintf(w, "%s  %-14s  %s  cities=%s cost=%s seed=%d\n",
			r.ID, humanize.Time(r.CreatedAt), r.Source,
			humanize.Comma(int64(r.Cities)), tspfile.FormatCost(r.Cost), r.Seed)
		if err != nil {
			return err
		}
	}
	return nil
}
