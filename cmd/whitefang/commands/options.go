package commands

import (
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/whitefang/pkg/config"
	"github.com/Sumatoshi-tech/whitefang/pkg/discover"
)

// commonOptions holds the flag surface shared by fix and scan runs.
type commonOptions struct {
	path        string
	configPath  string
	language    string
	excludeDirs []string
	maxFileSize string
	noColor     bool
	verbose     bool
}

// runOptions is the merged result of defaults, config file, environment,
// and flags. Flags win over config, config over defaults.
type runOptions struct {
	Root        string
	Language    discover.Language
	ExcludeDirs []string
	MaxFileSize int64
	Format      string
	NoColor     bool
	NoLock      bool
	Verbose     bool
}

func (co *commonOptions) registerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&co.path, "path", "p", ".", "Directory tree to process")
	cmd.Flags().StringVar(&co.configPath, "config", "", "Config file (default: .whitefang.yaml in the working directory)")
	cmd.Flags().StringVar(&co.language, "language", "", "Language whose files are processed (default: Python)")
	cmd.Flags().StringSliceVar(&co.excludeDirs, "exclude", nil, "Extra directory names to skip")
	cmd.Flags().StringVar(&co.maxFileSize, "max-file-size", "", "Skip files larger than this size (e.g. 10MB; 0 = no limit)")
	cmd.Flags().BoolVar(&co.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVarP(&co.verbose, "verbose", "v", false, "Verbose diagnostics on stderr")
}

// resolve loads the configuration, applies flag overrides, and validates
// the result.
func (co *commonOptions) resolve(cmd *cobra.Command, args []string) (*runOptions, error) {
	cfg, err := config.LoadConfig(co.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("language") {
		cfg.Discovery.Language = co.language
	}

	if cmd.Flags().Changed("max-file-size") {
		cfg.Discovery.MaxFileSize = co.maxFileSize
	}

	if cmd.Flags().Changed("no-color") {
		cfg.Output.NoColor = co.noColor
	}

	if cmd.Flags().Changed("verbose") {
		cfg.Output.Verbose = co.verbose
	}

	maxSize, err := cfg.MaxFileSizeBytes()
	if err != nil {
		return nil, err
	}

	language := discover.DefaultLanguage()
	if cfg.Discovery.Language != language.Name {
		language, err = discover.LanguageByName(cfg.Discovery.Language)
		if err != nil {
			return nil, err
		}
	}

	root := co.path
	if len(args) > 0 {
		root = args[0]
	}

	return &runOptions{
		Root:        root,
		Language:    language,
		ExcludeDirs: append(cfg.Discovery.ExcludeDirs, co.excludeDirs...),
		MaxFileSize: maxSize,
		Format:      cfg.Output.Format,
		NoColor:     cfg.Output.NoColor || color.NoColor,
		NoLock:      cfg.Lock.Disabled,
		Verbose:     cfg.Output.Verbose,
	}, nil
}

func (o *runOptions) discoverOptions() discover.Options {
	return discover.Options{
		Extensions:  o.Language.Extensions,
		ExcludeDirs: o.ExcludeDirs,
		MaxFileSize: o.MaxFileSize,
	}
}

// discoverFiles enumerates the candidate files for a run.
func discoverFiles(opts *runOptions) ([]string, error) {
	files, err := discover.SourceFiles(opts.Root, opts.discoverOptions())
	if err != nil {
		return nil, err
	}

	slog.Debug("discovered files", "root", opts.Root, "count", len(files), "language", opts.Language.Name)

	return files, nil
}

// setupLogging routes slog diagnostics to the command's error stream.
// Debug level only when verbose; warnings and up otherwise.
func setupLogging(verbose bool, w io.Writer) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
