package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"syscall"
	"time"

	"github.com/Dynom/mxreport/cmd/mxreport/config"
	"github.com/Dynom/mxreport/report"
	"github.com/Dynom/mxreport/runtimer"
	"github.com/Dynom/mxreport/validator"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func runReport(cmd *cobra.Command, settings *RunSettings) error {
	conf, err := loadConfig(cmd.Flags().Changed, settings)
	if err != nil {
		return err
	}

	logger, err := newLogger(conf, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	r, err := newResolver(conf)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sh := runtimer.New(os.Interrupt, syscall.SIGTERM)
	sh.RegisterCallback(func(s os.Signal) {
		logger.WithField("signal", s.String()).Warn("Received signal, stopping")
		cancel()
	})

	defer sh.Stop()

	return execute(ctx, conf, logger, r, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// loadConfig reads the configuration and applies the flags for which changed returns true
func loadConfig(changed func(name string) bool, settings *RunSettings) (config.Config, error) {
	conf, err := config.Load(settings.ConfigFile, changed("config"))
	if err != nil {
		return conf, err
	}

	if changed("input") {
		conf.Files.Input = settings.Input
	}

	if changed("output") {
		conf.Files.Valid = settings.Valid
	}

	if changed("invalid-output") {
		conf.Files.Invalid = settings.Invalid
	}

	if changed("workers") {
		conf.Resolver.Workers = settings.Workers
	}

	if changed("resolver") {
		conf.Resolver.Address = settings.Resolver
	}

	if changed("client") {
		conf.Resolver.Client = settings.Client
	}

	if changed("timeout") {
		conf.Resolver.Timeout = settings.Timeout
	}

	if changed("log-level") {
		conf.Log.Level = settings.LogLevel
	}

	if changed("log-format") {
		conf.Log.Format = settings.LogFormat
	}

	return conf, conf.Validate()
}

func execute(ctx context.Context, conf config.Config, logger logrus.FieldLogger, r validator.LookupMX, stdout, stderr io.Writer) error {
	emails, err := report.LoadAddresses(conf.Files.Input)
	if err != nil {
		printInputProblem(stderr, conf.Files.Input, err)
		return err
	}

	logger.WithFields(logrus.Fields{
		"input":     conf.Files.Input,
		"addresses": len(emails),
		"workers":   conf.Resolver.Workers,
		"client":    conf.Resolver.Client,
	}).Info("Starting")

	start := time.Now()
	reporter := report.New(r,
		report.WithWorkers(conf.Resolver.Workers),
		report.WithTimeout(conf.Resolver.Timeout.AsDuration()),
		report.WithFiles(conf.Files.Valid, conf.Files.Invalid),
		report.WithConsole(stdout),
		report.WithLogger(logger),
	)

	summary, err := reporter.Run(ctx, emails)
	if err != nil {
		return fmt.Errorf("run aborted, reason: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"summary":     summary,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Done")

	return nil
}
