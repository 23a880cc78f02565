package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/modfind/internal/app"
	"go.trai.ch/modfind/internal/core/domain"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <specifier...>",
		Short: "Resolve module specifiers to absolute filenames",
		Long: `Resolve each specifier against the candidate directories and print one
absolute filename per resolved specifier, in argument order. The command
fails if any specifier cannot be resolved.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			opts, err := resolveOptions(cmd)
			if err != nil {
				return err
			}

			results, err := c.app.Resolve(cmd.Context(), args, opts)
			printResults(cmd.OutOrStdout(), results)

			if stats, _ := cmd.Flags().GetBool("stats"); stats {
				s := c.app.Stats()
				c.logger.Info(fmt.Sprintf(
					"cache: %d resolutions, %d manifests, %d hits, %d misses",
					s.Resolutions, s.Manifests, s.Hits, s.Misses,
				))
			}
			return err
		},
	}
	addResolveFlags(cmd)
	cmd.Flags().Bool("stats", false, "Log resolution cache counters when done")
	return cmd
}

// addResolveFlags registers the flags shared by resolve and watch.
func addResolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("dir", "d", nil, "Candidate base directory, repeatable (default: working directory)")
	cmd.Flags().Bool("main", false, "Resolve as the program entry point (always follows symlinks)")
	cmd.Flags().StringArray("ext", nil, "Extension to probe, repeatable (default: configured extensions)")
}

func resolveOptions(cmd *cobra.Command) (app.ResolveOptions, error) {
	dirs, err := cmd.Flags().GetStringArray("dir")
	if err != nil {
		return app.ResolveOptions{}, err
	}
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	isMain, err := cmd.Flags().GetBool("main")
	if err != nil {
		return app.ResolveOptions{}, err
	}

	var exts []string
	if cmd.Flags().Changed("ext") {
		exts, err = cmd.Flags().GetStringArray("ext")
		if err != nil {
			return app.ResolveOptions{}, err
		}
		for _, ext := range exts {
			if err := domain.ValidateExtension(ext); err != nil {
				return app.ResolveOptions{}, err
			}
		}
	}

	return app.ResolveOptions{Dirs: dirs, IsMain: isMain, Extensions: exts}, nil
}

func printResults(w io.Writer, results []app.Result) {
	for _, res := range results {
		if res.Filename != "" {
			_, _ = fmt.Fprintln(w, res.Filename)
		}
	}
}
