package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// NewRootCommand builds the textkit command tree
func NewRootCommand() *cobra.Command {
	app := &appContext{}

	rootCmd := &cobra.Command{
		Use:   "textkit",
		Short: "Byte-level string utilities",
		Long: `textkit splits, trims, reverses and case-folds text byte by byte.

Input is taken from the arguments or, when none are given, from standard
input one line at a time.

Configuration is read from --config, ./textkit.toml or the user config
directory. Every key can be overridden with TEXTKIT_<SECTION>_<KEY>, e.g.
TEXTKIT_SPLIT_DELIMITER=",".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsSetup(cmd) {
				return nil
			}
			return app.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&app.flags.configFile, "config", "c", "", "Config file (default: ./textkit.toml)")
	flags.StringVar(&app.flags.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	flags.StringVarP(&app.flags.output, "output", "o", outputPlain, "Output format (plain, json, table)")
	flags.BoolVar(&app.flags.watch, "watch", false, "Reload the config file while reading standard input")
	flags.BoolVar(&app.flags.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newSplitCommand(app),
		newStripCommand(app),
		newReverseCommand(app),
		newDelimitCommand(app),
		newCopyCommand(app),
		newHexCommand(app),
		newLowerCommand(app),
		newUpperCommand(app),
		newCaseCmpCommand(app),
		newVersionCommand(),
	)

	return rootCmd
}

// skipsSetup reports whether cmd runs without config, logger and service.
// These commands must keep working while the config file is broken.
func skipsSetup(cmd *cobra.Command) bool {
	if !cmd.HasParent() {
		return true
	}
	for c := cmd; c.HasParent(); c = c.Parent() {
		switch c.Name() {
		case "version", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}

// Execute runs the root command until completion or interrupt and prints
// any error to stderr.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := NewRootCommand().ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		printError(err)
	}
	return err
}

// ExitCode maps err to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	// wrappers without a code defer to the error they wrap
	for err != nil {
		var mdwErr *mdwerror.Error
		if !errors.As(err, &mdwErr) {
			return 1
		}
		if mdwErr.Code() != mdwerror.CodeUnknown {
			return mdwErr.Code().ExitCode()
		}
		err = mdwErr.Unwrap()
	}
	return 1
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err.Error())
}
