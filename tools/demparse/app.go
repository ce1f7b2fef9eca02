// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package demparse defines the logic for the "demparse" command.
//
// demparse parses a demo capture, prints a summary of its phases, string
// tables, and modifier entries, and optionally exports it to a SQLite
// database.
package demparse

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/danjacques/godem/replay"
	"github.com/danjacques/godem/replay/export"
	"github.com/danjacques/godem/support/bufferpool"
	"github.com/danjacques/godem/support/logging"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
)

// Main is the main entry point.
func Main() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run runs demparse with args, writing its summary to stdout and usage
// errors to stderr. It returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("demparse", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: demparse [flags] <capture.dem>\n\n")
		fs.PrintDefaults()
	}

	var (
		configPath  = fs.String("config", "", "Path to a YAML configuration file.")
		exportDir   = fs.String("export", "", "Export the parsed capture to a SQLite database in this directory.")
		strict      = fs.Bool("strict", false, "Abort if a string table row fails to specialize.")
		verbose     = fs.BoolP("verbose", "v", false, "Enable debug logging.")
		metricsAddr = fs.String("metrics-addr", "", "If set, serve Prometheus metrics on this address while parsing.")
		policy      = StrictnessFlag(Lenient)
	)
	fs.Var(&policy, "specialization", fmt.Sprintf("Row specialization failure policy (%s, %s).", Lenient, Strict))

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	cfg := &Config{}
	if *configPath != "" {
		var err error
		if cfg, err = LoadFile(*configPath); err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
			return 2
		}
	} else {
		cfg.applyDefaults()
	}

	// Flags override the config file.
	if fs.Changed("export") {
		cfg.Export = *exportDir
	}
	if fs.Changed("specialization") {
		cfg.Specialization = policy.Value()
	}
	if fs.Changed("strict") {
		cfg.Specialization = Lenient
		if *strict {
			cfg.Specialization = Strict
		}
	}
	if fs.Changed("verbose") {
		cfg.Verbose = *verbose
	}
	if fs.Changed("metrics-addr") {
		cfg.MetricsAddr = *metricsAddr
	}

	logger, sync, err := logging.New(cfg.Verbose)
	if err != nil {
		fmt.Fprintf(stderr, "could not create logger: %s\n", err)
		return 1
	}
	defer sync()

	if err := run(cfg, fs.Arg(0), stdout, logger); err != nil {
		logger.Errorf("%s", err)
		return 1
	}
	return 0
}

func run(cfg *Config, path string, stdout io.Writer, logger logging.L) error {
	if cfg.MetricsAddr != "" {
		stop, err := serveMetrics(cfg.MetricsAddr, logger)
		if err != nil {
			return err
		}
		defer stop()
	}

	p := replay.Parser{
		Logger:           logger,
		Buffers:          &bufferpool.Pool{MaxRetainedSize: cfg.MaxBufferSize},
		SpecializeStrict: cfg.Specialization == Strict,
	}
	res, err := p.ParseFile(path)
	if err != nil {
		return err
	}

	if err := writeSummary(stdout, path, res, cfg.MaxFailures); err != nil {
		return errors.Wrap(err, "writing summary")
	}

	if cfg.Export != "" {
		tempDir := cfg.TempDir
		if tempDir == "" {
			tempDir = filepath.Dir(cfg.Export)
		}
		e := export.Exporter{TempDir: tempDir, Logger: logger}
		runID, err := e.Export(res, path, cfg.Export)
		if err != nil {
			return errors.Wrap(err, "exporting")
		}
		fmt.Fprintf(stdout, "\nExported run %s to %s\n", runID, cfg.Export)
	}
	return nil
}

// serveMetrics serves Prometheus metrics on addr until stop is called.
func serveMetrics(addr string, logger logging.L) (stop func(), err error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	replay.RegisterMonitoring(reg)

	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "listening on %q", addr)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := http.Server{Handler: mux}

	go func() {
		if err := srv.Serve(l); err != nil && err != http.ErrServerClosed {
			logger.Warnf("Metrics server failed: %s", err)
		}
	}()
	logger.Infof("Serving metrics on http://%s/metrics", l.Addr())

	return func() { _ = srv.Close() }, nil
}
