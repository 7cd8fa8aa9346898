package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"deskresolve/internal/app"
	"deskresolve/internal/output"
	"deskresolve/pkg/config"
	"deskresolve/pkg/logger"
)

const version = "0.1.0"

// cli carries the state shared by all subcommands of one invocation.
type cli struct {
	configPath string
	debug      bool
	format     string
	daemon     bool

	appOptions []app.Option

	log     *logger.Logger
	loggers []*logger.Logger
	app     *app.App
	printer *output.Printer
}

// newRootCmd returns the command tree and the state it fills in. Call
// cli.close once Execute returns, whatever the outcome.
func newRootCmd(appOptions ...app.Option) (*cobra.Command, *cli) {
	c := &cli{appOptions: appOptions}

	root := &cobra.Command{
		Use:          "deskresolve",
		Short:        "Resolve icons and list or focus windows across Linux compositors",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to config file")
	root.PersistentFlags().BoolVar(&c.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.format, "format", "yaml", "output format: yaml or json")
	root.PersistentFlags().BoolVar(&c.daemon, "daemon", false, "send the request to a running daemon")

	root.AddCommand(
		newServeCmd(c),
		newWindowsCmd(c),
		newFocusCmd(c),
		newIconCmd(c),
		newBackendCmd(c),
	)
	return root, c
}

func (c *cli) setup(cmd *cobra.Command) error {
	format, err := output.ParseFormat(c.format)
	if err != nil {
		return err
	}
	c.printer = output.NewPrinter(cmd.OutOrStdout(), format)

	logLevel := zerolog.WarnLevel
	if cmd.Name() == "serve" {
		logLevel = zerolog.InfoLevel
	}
	if c.debug {
		logLevel = zerolog.DebugLevel
	}

	log, err := logger.NewLogger(
		logger.WithConsole(),
		logger.WithLevel(logLevel),
	)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Failed to initialize logger: %v\n", err)
		return err
	}
	c.loggers = append(c.loggers, log)

	log.Debug("Starting deskresolve",
		"version", version,
		"pid", os.Getpid(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
		"command", cmd.Name())

	cfg, err := config.FindConfig(c.configPath, log)
	if err != nil {
		log.Error("Failed to load configuration", err, "provided_path", c.configPath)
		return err
	}

	if path := cfg.GetLogFile(); path != "" {
		fileLog, err := logger.NewLogger(logger.WithFile(path), logger.WithLevel(logLevel))
		if err != nil {
			log.Error("Failed to open log file", err, "path", path)
			return err
		}
		c.loggers = append(c.loggers, fileLog)
		log = fileLog
	}

	c.log = log
	c.app = app.New(cfg, log, c.appOptions...)
	return nil
}

// close releases every logger opened during setup.
func (c *cli) close() error {
	var errs []error
	for _, l := range c.loggers {
		if err := l.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.loggers = nil
	return errors.Join(errs...)
}

func (c *cli) print(v interface{}) error {
	return c.printer.Print(v)
}
