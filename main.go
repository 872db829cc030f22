package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/LFroesch/fx/internal/browser"
	"github.com/LFroesch/fx/internal/clipboard"
	"github.com/LFroesch/fx/internal/config"
	"github.com/LFroesch/fx/internal/logger"
	"github.com/LFroesch/fx/internal/opener"
)

var version = "dev"

type options struct {
	initConfig bool
	theme      string
	noIcons    bool
	showHidden bool
	strict     bool
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "fx [path]",
		Short:        "A terminal file browser",
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.initConfig {
				return initConfig(cmd.OutOrStdout())
			}
			cfg := config.Load()
			applyFlags(cfg, cmd, opts)

			start := "."
			if len(args) == 1 {
				start = args[0]
			}
			return run(cfg, start, opts.strict)
		},
	}
	cmd.SetVersionTemplate("fx {{.Version}}\n")
	cmd.PersistentPreRun = func(*cobra.Command, []string) {
		if err := logger.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
		}
		logger.SetDebug(opts.debug)
	}
	cmd.PersistentPostRun = func(*cobra.Command, []string) {
		logger.Close()
	}

	f := cmd.Flags()
	f.BoolVar(&opts.initConfig, "init-config", false, "write a sample config.toml to the user config directory and exit")
	f.StringVar(&opts.theme, "theme", "", "colour theme (catppuccin, nord, gruvbox, mono)")
	f.BoolVar(&opts.noIcons, "no-icons", false, "draw ASCII markers instead of icon glyphs")
	f.BoolVar(&opts.showHidden, "show-hidden", false, "list dotfiles")
	f.BoolVar(&opts.strict, "strict", false, "only launch handler commands on the allow-list")
	f.BoolVar(&opts.debug, "debug", false, "write debug messages to the log")

	return cmd
}

// applyFlags lets command-line flags override the loaded config.
func applyFlags(cfg *config.Config, cmd *cobra.Command, opts options) {
	if cmd.Flags().Changed("theme") {
		cfg.Appearance.Theme = opts.theme
	}
	if opts.noIcons {
		cfg.Appearance.Icons = false
	}
	if opts.showHidden {
		cfg.Layout.ShowHidden = true
	}
}

func initConfig(out io.Writer) error {
	path, err := config.InitGlobal()
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}
	fmt.Fprintf(out, "Created config at %s\n", path)
	return nil
}

func run(cfg *config.Config, start string, strict bool) error {
	logger.Info("Starting fx %s in %s (config %q)", version, start, cfg.Path)

	term := &terminalController{}
	launcher := opener.New(opener.WithTerminal(term), opener.WithStrict(strict))
	b := browser.New(start, cfg.Layout.ShowHidden)

	m := newModel(cfg, b, launcher, clipboard.New())
	p := tea.NewProgram(m, tea.WithAltScreen())
	term.attach(p)

	if _, err := p.Run(); err != nil {
		logger.Error("TUI exited with error: %v", err)
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
