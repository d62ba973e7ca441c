// Copyright 2026 Nexusgraph Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/nexusgraph/hyperplan/core"
	"github.com/nexusgraph/hyperplan/hypergraph/badger"
	"github.com/nexusgraph/hyperplan/match/mock"
	"github.com/nexusgraph/hyperplan/planner"
)

func main() {
	app := &cli.App{
		Name:  "hyperplan",
		Usage: "Inspect and exercise the search-initiation planner",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "explain",
				Usage:  "Run the planner over a pattern and print which strategy fired",
				Action: explainCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB hypergraph directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "mandatory",
						Usage:    "Comma-separated mandatory clause handles",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "optional",
						Usage: "Comma-separated optional clause handles",
					},
					&cli.StringFlag{
						Name:  "variables",
						Usage: "Comma-separated variable handles",
					},
				},
			},
			{
				Name:   "seed",
				Usage:  "Add a node to a BadgerDB hypergraph, printing its handle",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB hypergraph directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "type",
						Usage:    "Node type, as its numeric core.Type value",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Node name",
						Required: true,
					},
				},
			},
			{
				Name:   "bench",
				Usage:  "Run InitiateSearch repeatedly against a pattern and report timing",
				Action: benchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB hypergraph directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "mandatory",
						Usage:    "Comma-separated mandatory clause handles",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "variables",
						Usage: "Comma-separated variable handles",
					},
					&cli.IntFlag{
						Name:  "iterations",
						Usage: "Number of InitiateSearch calls to run",
						Value: 1000,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func explainCommand(c *cli.Context) error {
	store, err := openStore(c.String("db"))
	if err != nil {
		return err
	}
	defer store.Close()

	pattern, err := patternFromFlags(c)
	if err != nil {
		return err
	}

	p, err := planner.NewPlanner(store, mock.NewEngine())
	if err != nil {
		return fmt.Errorf("failed to create planner: %w", err)
	}
	defer p.Release()

	plan, err := p.InitiateSearch(pattern)
	if err != nil {
		return fmt.Errorf("InitiateSearch failed: %w", err)
	}

	fmt.Fprint(os.Stdout, plan.String())
	return nil
}

func seedCommand(c *cli.Context) error {
	store, err := openStore(c.String("db"))
	if err != nil {
		return err
	}
	defer store.Close()

	typeVal, err := strconv.ParseUint(c.String("type"), 10, 16)
	if err != nil {
		return fmt.Errorf("invalid type: %w", err)
	}

	h, err := store.AddAtom(core.NewNode(core.Type(typeVal), c.String("name")))
	if err != nil {
		return fmt.Errorf("failed to add node: %w", err)
	}

	fmt.Fprintf(os.Stdout, "%d\n", h)
	return nil
}

func benchCommand(c *cli.Context) error {
	store, err := openStore(c.String("db"))
	if err != nil {
		return err
	}
	defer store.Close()

	pattern, err := patternFromFlags(c)
	if err != nil {
		return err
	}

	p, err := planner.NewPlanner(store, mock.NewEngine())
	if err != nil {
		return fmt.Errorf("failed to create planner: %w", err)
	}
	defer p.Release()

	iterations := c.Int("iterations")
	start := time.Now()
	for i := 0; i < iterations; i++ {
		if _, err := p.InitiateSearch(pattern); err != nil {
			return fmt.Errorf("InitiateSearch failed on iteration %d: %w", i, err)
		}
	}
	elapsed := time.Since(start)

	fmt.Fprintf(os.Stdout, "%d iterations in %s (%s/iteration)\n", iterations, elapsed, elapsed/time.Duration(iterations))
	return nil
}

func openStore(dbPath string) (*badger.Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path is required")
	}
	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open hypergraph: %w", err)
	}
	return badger.NewStore(backend), nil
}

func patternFromFlags(c *cli.Context) (*core.Pattern, error) {
	pattern := core.NewPattern()

	mandatory, err := parseHandles(c.String("mandatory"))
	if err != nil {
		return nil, fmt.Errorf("invalid mandatory handles: %w", err)
	}
	pattern.Mandatory = mandatory

	if c.String("optional") != "" {
		optional, err := parseHandles(c.String("optional"))
		if err != nil {
			return nil, fmt.Errorf("invalid optional handles: %w", err)
		}
		pattern.Optional = optional
	}

	if c.String("variables") != "" {
		vars, err := parseHandles(c.String("variables"))
		if err != nil {
			return nil, fmt.Errorf("invalid variable handles: %w", err)
		}
		for _, v := range vars {
			pattern.Vars.Add(v)
		}
	}

	return pattern, nil
}

func parseHandles(s string) ([]core.Handle, error) {
	parts := strings.Split(s, ",")
	out := make([]core.Handle, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, core.Handle(n))
	}
	return out, nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
