package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/muxdash/internal/cli/formatter"
)

const analyzeRenderWidth = 80

func newAnalyzeCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print today's AI recommendation",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Loader.Load()
			for _, w := range res.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleYellow.Render("Warning: ")+w)
			}

			stop := func() {}
			if app.interactive() {
				sp := formatter.NewSpinner("Analyzing projects...")
				sp.Start()
				stop = sp.Stop
			}

			result := app.Advisor.Analyze(context.Background(), res.Projects, app.today(), force)
			stop()
			if result.Failed() {
				return errors.New(result.Err)
			}

			if result.FromCache {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("(cached from earlier today, use --force to refresh)"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMarkdown(result.Content, analyzeRenderWidth))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Ignore today's cached recommendation")

	return cmd
}
