// Package app wires configuration, logging, the window manager front end and
// the icon resolver into one long-lived object.
package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"deskresolve/internal/command"
	"deskresolve/internal/icon"
	"deskresolve/internal/icon/theme"
	"deskresolve/internal/ipc"
	"deskresolve/internal/wm"
	"deskresolve/pkg/config"
	"deskresolve/pkg/logger"
)

type App struct {
	Config  *config.Config
	Log     *logger.Logger
	Exec    command.Executor
	Icons   *icon.Resolver
	Windows *wm.Manager
}

type options struct {
	exec     command.Executor
	iconOpts []icon.Option
}

type Option func(*options)

// WithExecutor replaces the os/exec backed executor.
func WithExecutor(exec command.Executor) Option {
	return func(o *options) {
		o.exec = exec
	}
}

// WithIconOptions passes extra options to the icon resolver.
func WithIconOptions(opts ...icon.Option) Option {
	return func(o *options) {
		o.iconOpts = append(o.iconOpts, opts...)
	}
}

// New builds the application. The icon cache lives as long as the App.
func New(cfg *config.Config, log *logger.Logger, opts ...Option) *App {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.exec == nil {
		o.exec = command.NewRunner(cfg.GetCommandTimeout(), log)
	}

	themeName := cfg.GetIconTheme()
	if themeName == "" {
		home, _ := os.UserHomeDir()
		themeName = theme.DetectName(os.Getenv, home)
	}
	log.Debug("Using icon theme", "theme", themeName)

	fsys := icon.OSFileSystem{}
	lookup := theme.New(themeName, theme.WithStat(fsys.Stat))
	iconOpts := append([]icon.Option{icon.WithFileSystem(fsys), icon.WithThemeLookup(lookup)}, o.iconOpts...)
	icons := icon.NewResolver(log, iconOpts...)

	windows := wm.NewManager(o.exec, log,
		wm.WithIconResolver(icons),
		wm.WithEnrichWorkers(cfg.GetEnrichWorkers()))

	return &App{
		Config:  cfg,
		Log:     log,
		Exec:    o.exec,
		Icons:   icons,
		Windows: windows,
	}
}

// Serve runs the socket daemon until ctx is cancelled or the process
// receives SIGINT or SIGTERM.
func (a *App) Serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := ipc.NewServer(a.Config.GetSocketPath(), a.Windows, a.Icons, a.Log)
	if err := srv.Listen(); err != nil {
		a.Log.Error("Failed to start daemon", err, "socket", a.Config.GetSocketPath())
		return err
	}
	return srv.Serve(ctx)
}

// Client returns a client for the daemon configured in a.Config.
func (a *App) Client() *ipc.Client {
	return ipc.NewClient(a.Config.GetSocketPath(), a.Log)
}
