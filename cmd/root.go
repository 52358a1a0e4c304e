package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/codefind/codefind-cli/internal/assets"
	"github.com/codefind/codefind-cli/internal/config"
	"github.com/codefind/codefind-cli/internal/logging"
	"github.com/codefind/codefind-cli/internal/searcher"
	"github.com/codefind/codefind-cli/internal/ui/console"
)

var cfgFile string
var verbose bool
var noColor bool
var version = "dev"

var (
	recursive bool
	format    string
)

var rootCmd = &cobra.Command{
	Use:   "codefind <pattern> [file-pattern] [directory]",
	Short: "Search files for a regular-expression pattern",
	Long:  "codefind scans files under a directory for a regular-expression pattern, restricted by a filename glob, and prints each matching line.",
	Example: `  codefind "import.*pandas" "*.py"
  codefind "TODO" "*.go" ./internal`,
	Args:          cobra.MaximumNArgs(3),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// An empty pattern is a usage request, not an error. No config or
		// filesystem access happens on this branch.
		if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
			return cmd.Help()
		}
		if err := initConfig(); err != nil {
			logging.Error("Error: " + err.Error())
			return err
		}
		req := buildRequest(cmd, args, config.Get())
		return runSearch(req)
	},
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to any YAML file inside the config directory (default dir: ~/.config/codefind); all *.yaml in that directory are merged")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show per-file scan progress")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized output")
	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "descend into subdirectories")
	rootCmd.Flags().StringVar(&format, "format", "", "output format: plain or table")
	rootCmd.Version = version
}

func initConfig() error {
	var cfgDir string
	if cfgFile != "" {
		cfgDir = filepath.Dir(cfgFile)
	} else {
		dir, _ := os.UserConfigDir()
		cfgDir = filepath.Join(dir, "codefind")
	}
	if err := assets.WriteDefaultConfigIfMissing(cfgDir); err != nil {
		return fmt.Errorf("config dir %s: %w", cfgDir, err)
	}
	entries, err := os.ReadDir(cfgDir)
	if err != nil {
		return fmt.Errorf("config dir %s: %w", cfgDir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		low := strings.ToLower(e.Name())
		if strings.HasSuffix(low, ".yaml") || strings.HasSuffix(low, ".yml") {
			files = append(files, filepath.Join(cfgDir, e.Name()))
		}
	}
	cfg, err := config.LoadFromFiles(files)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.ValidateAgainstSchema(cfg); err != nil {
		return fmt.Errorf("schema error: %w", err)
	}
	logging.Init()
	logging.SetVerbose(verbose)
	return nil
}

// buildRequest maps positional args onto a Request, falling back to the
// configured defaults for the optional ones.
func buildRequest(cmd *cobra.Command, args []string, cfg config.Config) searcher.Request {
	req := defaultRequest(cfg)
	req.Pattern = args[0]
	if len(args) > 1 {
		req.FilePattern = args[1]
	}
	if len(args) > 2 {
		req.Directory = args[2]
	}
	if cmd.Flags().Changed("recursive") {
		req.Recursive = recursive
	}
	return req
}

func defaultRequest(cfg config.Config) searcher.Request {
	req := searcher.Request{
		FilePattern: cfg.Defaults.FilePattern,
		Directory:   cfg.Defaults.Directory,
		Recursive:   cfg.Defaults.Recursive,
	}
	if req.FilePattern == "" {
		req.FilePattern = "*.*"
	}
	if req.Directory == "" {
		req.Directory = "."
	}
	return req
}

func runSearch(req searcher.Request) error {
	cfg := config.Get()
	colored := colorEnabled(cfg)
	f := format
	if f == "" {
		f = cfg.Output.Format
	}
	var rep searcher.Reporter
	switch f {
	case "", "plain":
		rep = console.NewRenderer(os.Stdout, colored)
	case "table":
		rep = console.NewTableRenderer(os.Stdout, colored)
	default:
		err := fmt.Errorf("unknown format: %s", f)
		logging.Error("Error: " + err.Error())
		return err
	}
	s := searcher.New(cfg.Excludes)
	if _, err := s.Run(req, rep); err != nil {
		logging.Error("Error: " + err.Error())
		return err
	}
	return nil
}

func colorEnabled(cfg config.Config) bool {
	if noColor {
		return false
	}
	switch cfg.Output.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return text.ANSICodesSupported
	}
}
