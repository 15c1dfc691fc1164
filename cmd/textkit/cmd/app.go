package cmd

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/core/config"
	"github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/internal/textkit/service"
)

// globalFlags are the persistent flags shared by all commands
type globalFlags struct {
	configFile string
	logLevel   string
	output     string
	watch      bool
	noColor    bool
}

// appContext carries what every command needs once PersistentPreRunE ran
type appContext struct {
	flags globalFlags

	cfg     *config.Config
	logger  *log.Logger
	svc     *service.Service
	printer *printer
}

func (a *appContext) setup(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := a.newLogger(cmd)
	if err != nil {
		return err
	}
	a.logger = logger

	settings, err := service.SettingsFromConfig(cfg)
	if err != nil {
		return err
	}
	svc, err := service.NewService(service.Config{Settings: settings, Logger: logger})
	if err != nil {
		return err
	}
	a.svc = svc

	if a.flags.watch && cfg.FilePath() != "" {
		svc.Follow(cfg)
		if err := cfg.Watch(); err != nil {
			return err
		}
	}

	format := cfg.GetString(service.KeyOutputFormat)
	if cmd.Flags().Changed("output") {
		format = a.flags.output
	}
	p, err := newPrinter(cmd.OutOrStdout(), format, a.colorEnabled(cmd))
	if err != nil {
		return err
	}
	a.printer = p

	logger.Debug("command started", log.Fields{
		"command": cmd.CommandPath(),
		"config":  cfg.FilePath(),
		"output":  p.format,
	})
	return nil
}

func (a *appContext) teardown() {
	if a.cfg != nil {
		_ = a.cfg.Stop()
	}
}

func (a *appContext) loadConfig() (*config.Config, error) {
	path := strings.TrimSpace(a.flags.configFile)
	if path != "" {
		return config.LoadWithOptions(path, config.LoadOptions{
			EnvPrefix: service.EnvPrefix,
			Defaults:  service.Defaults(),
		})
	}

	opts := config.DefaultDiscoveryOptions("textkit")
	opts.EnvPrefix = service.EnvPrefix
	opts.Defaults = service.Defaults()
	return config.Discover(opts)
}

func (a *appContext) newLogger(cmd *cobra.Command) (*log.Logger, error) {
	levelName := a.cfg.GetString(service.KeyLogLevel)
	if cmd.Flags().Changed("log-level") {
		levelName = a.flags.logLevel
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	format, err := log.ParseFormat(a.cfg.GetString(service.KeyLogFormat))
	if err != nil {
		return nil, err
	}

	logger := log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "textkit",
	})
	if format == log.FormatConsole && !a.colorEnabled(cmd) {
		f := log.NewConsoleFormatter()
		f.DisableColors = true
		logger = logger.WithFormatter(f)
	}
	return logger.WithCorrelationID(uuid.NewString()), nil
}

// colorEnabled is true when config allows color and stdout is a terminal
func (a *appContext) colorEnabled(cmd *cobra.Command) bool {
	if a.flags.noColor || !a.cfg.GetBool(service.KeyOutputColor, true) {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
