package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/lintclimate/lintclimate/internal/adapters/outbound/analyzer"
	"github.com/lintclimate/lintclimate/internal/adapters/outbound/config"
	"github.com/lintclimate/lintclimate/internal/adapters/outbound/filesystem"
	"github.com/lintclimate/lintclimate/internal/adapters/outbound/gitinfo"
	"github.com/lintclimate/lintclimate/internal/adapters/outbound/publish"
	"github.com/lintclimate/lintclimate/internal/adapters/outbound/resolver"
	"github.com/lintclimate/lintclimate/internal/adapters/outbound/scanner"
	"github.com/lintclimate/lintclimate/internal/adapters/outbound/tui"
	"github.com/lintclimate/lintclimate/internal/application"
	"github.com/lintclimate/lintclimate/internal/domain"
	"github.com/spf13/cobra"
)

type lintFlags struct {
	path            string
	configuration   string
	project         string
	formatter       string
	outputFile      string
	appendToOutput  bool
	force           bool
	fix             bool
	codeClimate     bool
	codeClimateFile string
	outputReport    string
	linter          []string
	jsonOutput      bool
	showSummary     bool
}

func newLintCmd() *cobra.Command {
	var f lintFlags

	cmd := &cobra.Command{
		Use:   "lint [patterns...]",
		Short: "Lint files in order and aggregate the results",
		Long: "Run the configured linter over each file in order, print or collect the findings, " +
			"and optionally write a code-climate issue report. Patterns default to the files listed in .lintclimate.yaml.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var loader domain.OptionsLoader = config.New()
			opts, err := loader.Load(f.path)
			if err != nil {
				return fmt.Errorf("loading options: %w", err)
			}
			opts = f.apply(cmd, opts)

			patterns := args
			if len(patterns) == 0 {
				patterns = opts.Files
			}
			if len(patterns) == 0 {
				return fmt.Errorf("no files to lint: pass patterns or set files in the options file")
			}

			files, err := scanner.New().Expand(f.path, patterns)
			if err != nil {
				return fmt.Errorf("expanding file patterns: %w", err)
			}

			return runLint(cmd, f, files, opts)
		},
	}

	cmd.Flags().StringVar(&f.path, "path", ".", "Project path holding the options file and relative outputs")
	cmd.Flags().StringVarP(&f.configuration, "config", "c", "", "Lint configuration file (default: nearest tslint.json per file)")
	cmd.Flags().StringVarP(&f.project, "project", "p", "", "Project file or directory for type-aware linting")
	cmd.Flags().StringVarP(&f.formatter, "formatter", "t", "prose", "Output format: prose, json, msbuild, verbose")
	cmd.Flags().StringVarP(&f.outputFile, "output-file", "o", "", "Collect findings into this file instead of printing them")
	cmd.Flags().BoolVar(&f.appendToOutput, "append", false, "Append to an existing output file instead of replacing it")
	cmd.Flags().BoolVar(&f.force, "force", false, "Exit 0 even when errors are found")
	cmd.Flags().BoolVar(&f.fix, "fix", false, "Ask the linter to fix what it can")
	cmd.Flags().BoolVar(&f.codeClimate, "code-climate", false, "Write fingerprinted code-climate issues")
	cmd.Flags().StringVar(&f.codeClimateFile, "code-climate-file", domain.DefaultCodeClimateFile, "Code-climate report path")
	cmd.Flags().StringVar(&f.outputReport, "output-report", "", "Publish the run summary under this dotted namespace")
	cmd.Flags().StringSliceVar(&f.linter, "linter", nil, "Linter command line (default: tslint --format json)")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Print the run summary as JSON")
	cmd.Flags().BoolVar(&f.showSummary, "summary", false, "Print a boxed run overview")

	return cmd
}

// apply overlays explicitly set flags on the loaded options.
func (f lintFlags) apply(cmd *cobra.Command, opts domain.Options) domain.Options {
	changed := cmd.Flags().Changed
	if changed("config") {
		opts.Configuration = domain.ConfigurationSource{Path: f.configuration}
	}
	if changed("project") {
		opts.Project = f.project
	}
	if changed("formatter") {
		opts.Formatter = f.formatter
	}
	if changed("output-file") {
		opts.OutputFile = f.outputFile
	}
	if changed("append") {
		opts.AppendToOutput = f.appendToOutput
	}
	if changed("force") {
		opts.Force = f.force
	}
	if changed("fix") {
		opts.Fix = f.fix
	}
	if changed("code-climate") {
		opts.CodeClimate = f.codeClimate
	}
	if changed("code-climate-file") {
		opts.CodeClimateFile = f.codeClimateFile
	}
	if changed("output-report") {
		opts.OutputReport = f.outputReport
	}
	if changed("linter") {
		opts.Linter = f.linter
	}

	opts = opts.WithDefaults()
	opts.OutputFile = underRoot(f.path, opts.OutputFile)
	opts.CodeClimateFile = underRoot(f.path, opts.CodeClimateFile)
	return opts
}

func runLint(cmd *cobra.Command, f lintFlags, files []string, opts domain.Options) error {
	res := resolver.New()
	defer res.Close()

	// Keep stdout machine-readable when it carries the JSON summary.
	logOut := cmd.OutOrStdout()
	if f.jsonOutput {
		logOut = cmd.ErrOrStderr()
	}

	svc := application.NewLintService(
		analyzer.New(opts.Linter),
		analyzer.NewProjectLoader(),
		res,
		filesystem.New(),
		tui.NewConsole(logOut, cmd.ErrOrStderr()),
	)

	summary, err := svc.Run(cmd.Context(), files, opts)
	if err != nil {
		return fmt.Errorf("lint run failed: %w", err)
	}

	stampCommit(gitinfo.New(), f.path, summary)

	if opts.OutputReport != "" {
		if err := publishSummary(publish.New(f.path), opts, summary); err != nil {
			return fmt.Errorf("publishing summary: %w", err)
		}
	}

	switch {
	case f.jsonOutput:
		if err := renderSummaryJSON(cmd, summary); err != nil {
			return err
		}
	case f.showSummary:
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(summary))
	}

	if !summary.Pass && !opts.Force {
		return fmt.Errorf("%w: %s", ErrLintFailed, summary.Message)
	}
	return nil
}

// stampCommit attaches the HEAD commit when the project is a git work tree.
func stampCommit(git domain.GitInfo, root string, summary *domain.RunSummary) {
	if !git.IsGitRepo(root) {
		return
	}
	if hash, err := git.CommitHash(root); err == nil {
		summary.CommitHash = hash
	}
}

func publishSummary(publisher domain.SummaryPublisher, opts domain.Options, summary *domain.RunSummary) error {
	formatter, err := domain.ParseFormatter(opts.Formatter)
	if err != nil {
		return err
	}
	report, err := domain.NewPublishedReport(summary, formatter)
	if err != nil {
		return err
	}
	return publisher.Publish(opts.OutputReport, report)
}

func renderSummaryJSON(cmd *cobra.Command, summary *domain.RunSummary) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

func underRoot(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
