package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/oleszik/StaticCodeAnalyzer/internal/config"
	"github.com/oleszik/StaticCodeAnalyzer/internal/lint"
	"github.com/oleszik/StaticCodeAnalyzer/internal/rule"
)

// Runner drives the linting pipeline: for each file it reads and decodes
// the content, runs the line rules and the tree rules, and collects the
// findings. Files are linted concurrently by at most Jobs workers.
type Runner struct {
	Config *config.Config
	Rules  []rule.Rule

	// Logger receives debug and warning events. Nil means no logging.
	Logger *zap.Logger

	// Jobs bounds the number of files linted at once. Zero or less means
	// one worker per CPU.
	Jobs int

	// Progress, when set, receives a progress bar for the scan.
	Progress io.Writer
}

// Result holds the output of a lint run.
type Result struct {
	Findings []lint.Finding
	Errors   []error
}

type fileResult struct {
	findings []lint.Finding
	errs     []error
}

// Run lints the files at the given paths and returns a Result containing
// all findings (sorted by file, line, code) and any errors encountered.
// An error in one file never stops the others. Cancelling ctx stops new
// files from being scheduled and adds ctx.Err() to the errors.
func (r *Runner) Run(ctx context.Context, paths []string) *Result {
	log := r.logger()
	lineRules, treeRules := rule.Split(r.Rules)

	var todo []string
	for _, path := range paths {
		if r.Config != nil && r.Config.IsIgnored(path) {
			log.Debug("ignored by config", zap.String("file", path))
			continue
		}
		todo = append(todo, path)
	}

	jobs := r.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	log.Debug("linting",
		zap.Int("files", len(todo)),
		zap.Int("jobs", jobs),
		zap.Int("rules", len(r.Rules)))

	bar := r.progressBar(len(todo))

	results := make([]fileResult, len(todo))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range todo {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = r.lintPath(gctx, path, lineRules, treeRules)
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()
	if bar != nil {
		_ = bar.Finish()
	}

	res := &Result{}
	for _, fr := range results {
		res.Findings = append(res.Findings, fr.findings...)
		res.Errors = append(res.Errors, fr.errs...)
	}
	if err := ctx.Err(); err != nil {
		res.Errors = append(res.Errors, err)
	}

	lint.SortFindings(res.Findings)
	return res
}

// RunSource lints source as if it had been read from path. It is used for
// standard input.
func (r *Runner) RunSource(ctx context.Context, path string, source []byte) *Result {
	lineRules, treeRules := rule.Split(r.Rules)
	fr := r.lintSource(ctx, path, source, lineRules, treeRules)
	return &Result{Findings: fr.findings, Errors: fr.errs}
}

func (r *Runner) lintPath(ctx context.Context, path string, lineRules []rule.LineRule, treeRules []rule.TreeRule) fileResult {
	source, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("reading %q: %w", path, err)
		r.logger().Warn("skipped file", zap.Error(err))
		return fileResult{errs: []error{err}}
	}
	return r.lintSource(ctx, path, source, lineRules, treeRules)
}

func (r *Runner) lintSource(ctx context.Context, path string, source []byte, lineRules []rule.LineRule, treeRules []rule.TreeRule) fileResult {
	log := r.logger()
	start := time.Now()

	f, err := lint.NewFile(path, source)
	if err != nil {
		log.Warn("skipped file", zap.Error(err))
		return fileResult{errs: []error{err}}
	}

	var fr fileResult
	findings, err := CheckFile(ctx, f, lineRules, treeRules)
	fr.findings = findings
	if err != nil {
		log.Warn("tree checks skipped", zap.Error(err))
		fr.errs = append(fr.errs, err)
	}

	log.Debug("checked file",
		zap.String("file", path),
		zap.Int("lines", len(f.Lines)),
		zap.Int("findings", len(findings)),
		zap.Duration("took", time.Since(start)))
	return fr
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func (r *Runner) progressBar(total int) *progressbar.ProgressBar {
	if r.Progress == nil || total == 0 {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.Progress),
		progressbar.OptionSetDescription("checking"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
