// Command narrowway encrypts and decrypts single NarrowWay blocks, writes and
// checks known answer files, and benchmarks the ciphers.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/carlmjohnson/versioninfo"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"gopkg.in/op/go-logging.v1"

	"narrowway-go/config"
	"narrowway-go/log"
)

const (
	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagVariant  = "variant"
	flagField    = "field"
	flagKey      = "key"
)

// app is the state shared by every subcommand once the root command has
// loaded the configuration.
type app struct {
	cfg     *config.Config
	backend *log.Backend
	log     *logging.Logger
}

func newRootCommand() *cobra.Command {
	a := new(app)

	root := &cobra.Command{
		Use:           "narrowway",
		Short:         "NarrowWay block cipher tool",
		Long:          "Encrypt and decrypt single NarrowWay-256, -384 and -512 blocks, manage known answer tests and benchmark the ciphers.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().StringP(flagConfig, "c", "", "path to TOML config file")
	root.PersistentFlags().String(flagLogLevel, "", "log level: ERROR, WARNING, NOTICE, INFO or DEBUG")

	root.AddCommand(
		a.newEncryptCommand(),
		a.newDecryptCommand(),
		a.newKeygenCommand(),
		a.newKatCommand(),
		a.newVerifyKatCommand(),
		a.newBenchCommand(),
	)
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	var err error

	cfgFile, _ := cmd.Flags().GetString(flagConfig)
	if cfgFile != "" {
		if a.cfg, err = config.LoadFile(cfgFile); err != nil {
			return fmt.Errorf("failed to load config file '%v': %w", cfgFile, err)
		}
	} else {
		a.cfg = config.Default()
	}

	if lvl, _ := cmd.Flags().GetString(flagLogLevel); lvl != "" {
		lvl = strings.ToUpper(lvl)
		if !log.IsValidLevel(lvl) {
			return fmt.Errorf("invalid argument %q for --%s", lvl, flagLogLevel)
		}
		a.cfg.Logging.Level = lvl
	}

	a.backend, err = log.New(a.cfg.Logging.File, a.cfg.Logging.Level, a.cfg.Logging.Disable)
	if err != nil {
		return err
	}
	a.log = a.backend.GetLogger("narrowway")
	return nil
}

func main() {
	cmd := newRootCommand()
	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(versioninfo.Short()),
		fang.WithErrorHandler(errorHandler(cmd, os.Args[1:])),
	); err != nil {
		os.Exit(1)
	}
}

// errorHandler prints the error, followed by the usage of the subcommand
// that args selects when the error is a usage error.
func errorHandler(root *cobra.Command, args []string) fang.ErrorHandler {
	return func(w io.Writer, styles fang.Styles, err error) {
		_, _ = fmt.Fprintln(w, styles.ErrorHeader.String())
		_, _ = fmt.Fprintln(w, styles.ErrorText.Render(err.Error()+"."))
		_, _ = fmt.Fprintln(w)

		if isUsageError(err) {
			_, _ = fmt.Fprint(w, failingCommand(root, args).UsageString())
			return
		}
		_, _ = fmt.Fprintln(w, lipgloss.JoinHorizontal(
			lipgloss.Left,
			styles.ErrorText.UnsetWidth().Render("Try"),
			styles.Program.Flag.Render("--help"),
			styles.ErrorText.UnsetWidth().UnsetMargins().UnsetTransform().PaddingLeft(1).Render("for usage."),
		))
		_, _ = fmt.Fprintln(w)
	}
}

// failingCommand resolves args to a subcommand the way cobra does when it
// executes, falling back to root for an unknown command.
func failingCommand(root *cobra.Command, args []string) *cobra.Command {
	cmd, _, err := root.Find(args)
	if err != nil || cmd == nil {
		return root
	}
	return cmd
}

func isUsageError(err error) bool {
	s := err.Error()
	for _, prefix := range []string{
		"flag needs an argument:",
		"unknown flag:",
		"unknown shorthand flag:",
		"unknown command",
		"invalid argument",
		"required flag",
		"accepts",
		"failed to load config file",
	} {
		if strings.Contains(s, prefix) {
			return true
		}
	}
	return false
}
