package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/zjrosen/inkwell/internal/app"
	"github.com/zjrosen/inkwell/internal/config"
	"github.com/zjrosen/inkwell/internal/log"
	"github.com/zjrosen/inkwell/internal/ui/styles"
)

func init() {
	// Query the terminal background before any program starts so the OSC 11
	// reply cannot race the input loop.
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool

	cfg        config.Config
	cfgPath    string
	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "inkwell [file]",
	Short: "A markdown editor for the terminal",
	Long: `A terminal markdown editor with live syntax highlighting and a rendered preview.

Without a file, inkwell opens a sample document. Edits are never written back.`,
	Version:            version,
	Args:               cobra.MaximumNArgs(1),
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runApp,
	SilenceUsage:       true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .inkwell/config.yaml, then ~/.config/inkwell/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log and show warnings as toasts (also INKWELL_DEBUG)")
}

// setup starts logging, then loads and applies the config.
func setup(_ *cobra.Command, _ []string) error {
	if debugEnabled() {
		logPath := os.Getenv("INKWELL_LOG")
		if logPath == "" {
			logPath = "debug.log"
		}
		cleanup, err := log.Init(logPath)
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		logCleanup = cleanup
		log.Info(log.CatConfig, "Inkwell starting", "version", version, "logPath", logPath)
	}

	loaded, path, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}
	cfg, cfgPath = loaded, path

	if cfg.Theme.Mode != "" {
		lipgloss.SetHasDarkBackground(cfg.Theme.Mode == "dark")
	}
	if err := styles.ApplyTheme(cfg.Theme.Styles()); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logCleanup != nil {
		logCleanup()
		logCleanup = nil
	}
	return nil
}

func debugEnabled() bool {
	return debugFlag || os.Getenv("INKWELL_DEBUG") != ""
}

// loadConfig reads explicit, or the first config found in the lookup order:
//  1. .inkwell/config.yaml (current directory)
//  2. ~/.config/inkwell/config.yaml
//
// When neither exists the default template is written to the user path. The
// returned path is where theme changes are saved; it is empty when there is
// nowhere to save.
func loadConfig(explicit string) (config.Config, string, error) {
	v := config.NewViper()

	path := explicit
	if path == "" {
		if _, err := os.Stat(config.LocalConfigPath); err == nil {
			path = config.LocalConfigPath
		} else if userPath, err := config.UserConfigPath(); err == nil {
			path = userPath
			if _, err := os.Stat(userPath); errors.Is(err, os.ErrNotExist) {
				if err := config.WriteDefaultConfig(userPath); err != nil {
					// Carry on with defaults.
					log.Warn(log.CatConfig, "Could not write default config", "path", userPath, "error", err)
					path = ""
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, "", fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	c, err := config.Load(v)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("invalid config %s: %w", path, err)
	}
	log.Debug(log.CatConfig, "Config loaded", "path", path)
	return c, path, nil
}

func runApp(_ *cobra.Command, args []string) error {
	opts := app.Options{
		Config:     cfg,
		ConfigPath: cfgPath,
		Content:    SampleDocument,
		Debug:      debugEnabled(),
	}
	if len(args) == 1 {
		text, err := readDocument(args[0], nil)
		if err != nil {
			return err
		}
		opts.FilePath = args[0]
		opts.Content = text
	}

	zone.NewGlobal()
	model := app.New(opts)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	model.Close()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// readDocument reads path, or stdin when path is "-".
func readDocument(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		if stdin == nil {
			return "", errors.New("stdin is not available here")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-chosen document
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
