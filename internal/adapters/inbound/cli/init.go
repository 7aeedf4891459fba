package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lintclimate/lintclimate/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const optionsFileName = ".lintclimate.yaml"

func newInitCmd() *cobra.Command {
	var (
		formatter   string
		codeClimate bool
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .lintclimate.yaml options file",
		Long:  "Create a .lintclimate.yaml with the default run options, ready to be edited.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, optionsFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", optionsFileName)
				}
			}

			opts := domain.DefaultOptions()
			opts.Formatter = formatter
			opts.CodeClimate = codeClimate
			opts.Files = []string{"src/**/*.ts"}
			opts = opts.WithDefaults()
			if err := opts.Validate(); err != nil {
				return err
			}

			content, err := generateOptions(opts)
			if err != nil {
				return err
			}

			if err := os.WriteFile(dest, content, 0644); err != nil {
				return fmt.Errorf("writing options: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", optionsFileName)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatter, "formatter", "t", "prose", "Output format: prose, json, msbuild, verbose")
	cmd.Flags().BoolVar(&codeClimate, "code-climate", false, "Enable the code-climate issue report")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .lintclimate.yaml")

	return cmd
}

func generateOptions(opts domain.Options) ([]byte, error) {
	body, err := yaml.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("encoding options: %w", err)
	}

	header := "# lintclimate options\n\n"
	footer := `
# configuration: tslint.json   # or an inline mapping:
# configuration:
#   rules:
#     no-eval: true
`
	return []byte(header + string(body) + footer), nil
}
