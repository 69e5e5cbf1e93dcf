package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/oleszik/StaticCodeAnalyzer/internal/config"
	"github.com/oleszik/StaticCodeAnalyzer/internal/discovery"
	"github.com/oleszik/StaticCodeAnalyzer/internal/engine"
	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
	logpkg "github.com/oleszik/StaticCodeAnalyzer/internal/log"
	"github.com/oleszik/StaticCodeAnalyzer/internal/output"
	"github.com/oleszik/StaticCodeAnalyzer/internal/rule"
	"github.com/oleszik/StaticCodeAnalyzer/internal/rules"

	// Import all rule packages so their init() functions register rules.
	_ "github.com/oleszik/StaticCodeAnalyzer/internal/rules/argumentname"
	_ "github.com/oleszik/StaticCodeAnalyzer/internal/rules/blanklines"
	_ "github.com/oleszik/StaticCodeAnalyzer/internal/rules/classname"
	_ "github.com/oleszik/StaticCodeAnalyzer/internal/rules/defspacing"
	_ "github.com/oleszik/StaticCodeAnalyzer/internal/rules/functionname"
	_ "github.com/oleszik/StaticCodeAnalyzer/internal/rules/indentation"
	_ "github.com/oleszik/StaticCodeAnalyzer/internal/rules/inlinecomment"
	_ "github.com/oleszik/StaticCodeAnalyzer/internal/rules/mutabledefault"
	_ "github.com/oleszik/StaticCodeAnalyzer/internal/rules/semicolon"
	_ "github.com/oleszik/StaticCodeAnalyzer/internal/rules/todocomment"
	_ "github.com/oleszik/StaticCodeAnalyzer/internal/rules/toolongline"
	_ "github.com/oleszik/StaticCodeAnalyzer/internal/rules/variablename"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: pystyle <command> [flags] [files...]

Commands:
  check     Check Python files for style issues (default)
  help      Show help for rules and topics
  init      Generate a default .pystyle.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'pystyle <command> --help' for more information on a command.
`

func run() int {
	// No arguments: check the files named by the config.
	if len(os.Args) < 2 {
		return runCheck(nil)
	}

	first := os.Args[1]

	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	case "--version":
		printVersion()
		return 0
	case "check":
		return runCheck(os.Args[2:])
	case "help":
		return runHelp(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		return runCheck(os.Args[1:])
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("pystyle %s\n", version)
}

// checkOptions carries the flags of the check subcommand.
type checkOptions struct {
	configPath  string
	format      string
	noColor     bool
	quiet       bool
	verbose     bool
	noGitignore bool
	jobs        int
	progress    bool
}

// runCheck implements the "check" subcommand: lint files.
func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	var opts checkOptions

	fs.StringVarP(&opts.configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress the report; only the exit code tells the result")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress details to stderr")
	fs.BoolVar(&opts.noGitignore, "no-gitignore", false, "Disable .gitignore filtering when walking directories")
	fs.IntVarP(&opts.jobs, "jobs", "j", 0, "Number of files checked in parallel (default: one per CPU)")
	fs.BoolVar(&opts.progress, "progress", false, "Show a progress bar on stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pystyle check [flags] [files...]\n\n"+
			"Check Python files for style issues.\n\n"+
			"Files can be paths, directories (walked recursively for *.py), or glob patterns.\n"+
			"With no file arguments, reads from stdin if piped, otherwise checks the\n"+
			"files matched by the config's files patterns.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if _, err := output.New(opts.format, false); err != nil {
		fmt.Fprintf(os.Stderr, "pystyle: %v\n", err)
		return 2
	}
	if opts.jobs < 0 {
		fmt.Fprintf(os.Stderr, "pystyle: --jobs must not be negative\n")
		return 2
	}

	logger := logpkg.New(os.Stderr, opts.verbose)
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(opts.configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pystyle: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := &engine.Runner{
		Config: cfg,
		Rules:  rule.All(),
		Logger: logger,
		Jobs:   cfg.Jobs,
	}
	if opts.jobs > 0 {
		runner.Jobs = opts.jobs
	}
	if opts.progress {
		runner.Progress = os.Stderr
	}

	files := fs.Args()
	if len(files) == 0 && isStdinPipe() {
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pystyle: reading stdin: %v\n", err)
			return 2
		}
		return report(runner.RunSource(ctx, "<stdin>", source), nil, opts)
	}

	useGitignore := cfg.UseGitignore() && !opts.noGitignore
	var resolveErr error
	if len(files) == 0 {
		files, err = discovery.Discover(discovery.Options{
			Patterns:     cfg.Files,
			BaseDir:      ".",
			UseGitignore: useGitignore,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "pystyle: %v\n", err)
			return 2
		}
	} else {
		files, resolveErr = lint.ResolveFilesWithOpts(files, lint.ResolveOpts{UseGitignore: &useGitignore})
	}
	logger.Debug("resolved files", zap.Int("count", len(files)))

	return report(runner.Run(ctx, files), resolveErr, opts)
}

// report prints errors and findings and returns the exit code: 0 when
// clean, 1 when there are findings, 2 when an input could not be resolved
// (lint.ErrInputNotFound among others) or when nothing but errors came
// out of the run.
func report(result *engine.Result, resolveErr error, opts checkOptions) int {
	if resolveErr != nil {
		for _, e := range unjoin(resolveErr) {
			fmt.Fprintf(os.Stderr, "pystyle: %v\n", e)
		}
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "pystyle: %v\n", e)
	}

	if !opts.quiet && (len(result.Findings) > 0 || opts.format == "json") {
		formatter, _ := output.New(opts.format, !opts.noColor && !color.NoColor)
		if err := formatter.Format(os.Stdout, result.Findings); err != nil {
			fmt.Fprintf(os.Stderr, "pystyle: error writing output: %v\n", err)
			return 2
		}
	}

	switch {
	case resolveErr != nil:
		return 2
	case len(result.Errors) > 0 && len(result.Findings) == 0:
		return 2
	case len(result.Findings) > 0:
		return 1
	}
	return 0
}

// unjoin splits an error built by errors.Join back into its parts.
func unjoin(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// runInit implements the "init" subcommand: generate .pystyle.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pystyle init\n\n"+
			"Generate a default %s config file in the current directory.\n", config.FileName)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "pystyle: init takes no arguments\n")
		return 2
	}

	if _, err := os.Stat(config.FileName); err == nil {
		fmt.Fprintf(os.Stderr, "pystyle: %s already exists\n", config.FileName)
		return 2
	}

	data, err := yaml.Marshal(config.Defaults())
	if err != nil {
		fmt.Fprintf(os.Stderr, "pystyle: marshalling config: %v\n", err)
		return 2
	}

	if err := os.WriteFile(config.FileName, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "pystyle: writing %s: %v\n", config.FileName, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "pystyle: created %s\n", config.FileName)
	return 0
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the current directory, and validates it.
func loadConfig(configPath string, logger *zap.Logger) (*config.Config, error) {
	defaults := config.Defaults()

	path := configPath
	if path == "" {
		if cwd, err := os.Getwd(); err == nil {
			path, _ = config.Discover(cwd)
		}
	}

	if path == "" {
		logger.Debug("no config file, using defaults")
		return config.Merge(defaults, nil), nil
	}

	loaded, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded config", zap.String("path", path))

	cfg := config.Merge(defaults, loaded)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

const helpUsageText = `Usage: pystyle help <topic>

Topics:
  rule [code|name]   Show rule documentation
`

// runHelp implements the "help" subcommand.
func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, helpUsageText)
		return 0
	}

	switch args[0] {
	case "rule":
		return runHelpRule(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "pystyle: help: unknown topic %q\n", args[0])
		return 2
	}
}

// runHelpRule implements "help rule [code|name]".
func runHelpRule(args []string) int {
	if len(args) == 0 {
		return listAllRules()
	}
	return showRule(args[0])
}

func listAllRules() int {
	all, err := rules.ListRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pystyle: %v\n", err)
		return 2
	}

	for _, r := range all {
		fmt.Printf("%-6s %-24s %s\n", r.ID, r.Name, r.Description)
	}
	return 0
}

func showRule(query string) int {
	content, err := rules.LookupRule(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pystyle: %v\n", err)
		return 2
	}
	fmt.Print(content)
	return 0
}
