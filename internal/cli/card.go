package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/pipeline"
)

// cardOpts holds the command-line flags for the card command.
type cardOpts struct {
	output       string  // output file path, "-" for stdout
	cardType     string  // card type: activity, compact, languages
	theme        string  // color theme name
	width        int     // card width in pixels
	layout       string  // layout: default, vertical
	hideBorder   bool    // drop the border rectangle
	borderRadius float64 // corner rounding in pixels
	hideStats    bool    // drop the stats row
	hideProjects bool    // drop the recent projects section
	refresh      bool    // bypass the summary cache
	noCache      bool    // disable the local file cache entirely
	token        string  // GitHub API token (overrides GITHUB_TOKEN)
	apiURL       string  // alternate API base URL (GitHub Enterprise)
	asJSON       bool    // print the summary as JSON instead of rendering
}

// cardCommand creates the card command for one-shot rendering.
func (c *CLI) cardCommand() *cobra.Command {
	var opts cardOpts

	cmd := &cobra.Command{
		Use:   "card <username>",
		Short: "Render an activity card for a GitHub user",
		Long: `Fetch a user's public activity and render it as an SVG card.

Summaries are cached locally for a few hours, so repeated renders of the
same user (for example while trying themes) skip the network. Use
--refresh to force a refetch, or --no-cache to disable caching entirely.

With --json the synthesized summary is printed instead of an SVG, which
is useful for piping into other tools.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("border-radius") {
				return c.runCard(cmd.Context(), args[0], opts, &opts.borderRadius)
			}
			return c.runCard(cmd.Context(), args[0], opts, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file (default <username>.svg, "-" for stdout)`)
	cmd.Flags().StringVarP(&opts.cardType, "type", "t", "", "card type: activity (default), compact, languages")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "color theme (see 'activitycard themes')")
	cmd.Flags().IntVar(&opts.width, "width", 0, "card width in pixels")
	cmd.Flags().StringVar(&opts.layout, "layout", "", "layout: default, vertical")
	cmd.Flags().BoolVar(&opts.hideBorder, "hide-border", false, "render without a border")
	cmd.Flags().Float64Var(&opts.borderRadius, "border-radius", pipeline.DefaultBorderRadius, "border corner radius")
	cmd.Flags().BoolVar(&opts.hideStats, "hide-stats", false, "hide the statistics row")
	cmd.Flags().BoolVar(&opts.hideProjects, "hide-projects", false, "hide the recent projects section")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the summary cache and refetch")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the local cache")
	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub API token (defaults to GITHUB_TOKEN)")
	cmd.Flags().StringVar(&opts.apiURL, "api-url", "", "alternate GitHub API base URL")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the activity summary as JSON")

	return cmd
}

// runCard executes the pipeline once and writes the result.
func (c *CLI) runCard(ctx context.Context, username string, opts cardOpts, radius *float64) error {
	ctx = withLogger(ctx, c.Logger)

	runner, err := c.newRunner(githubToken(opts.token), opts.apiURL, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	if opts.asJSON {
		return c.runSummaryJSON(ctx, runner, username, opts.output)
	}

	pOpts := pipeline.Options{
		Username:     username,
		Type:         opts.cardType,
		Theme:        opts.theme,
		HideBorder:   opts.hideBorder,
		BorderRadius: radius,
		HideStats:    opts.hideStats,
		HideProjects: opts.hideProjects,
		Width:        opts.width,
		Layout:       opts.layout,
		Refresh:      opts.refresh,
		Logger:       c.Logger,
	}
	if err := pOpts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching activity for @%s...", pOpts.Username))
	spinner.Start()

	result, err := runner.Execute(ctx, pOpts)
	if err != nil {
		spinner.StopWithError("Card generation failed")
		return err
	}
	spinner.Stop()

	output := opts.output
	if output == "" {
		output = pOpts.Username + ".svg"
	}
	if err := writeOutput(ctx, output, result.SVG); err != nil {
		return err
	}

	printSuccess("Rendered %s card for @%s", pOpts.Type, pOpts.Username)
	printStats(result.Stats.EventCount, result.Stats.RepoCount, result.Stats.CacheHit)
	if output != "-" {
		printFile(output)
	}
	return nil
}

// runSummaryJSON prints the synthesized summary without rendering a card.
func (c *CLI) runSummaryJSON(ctx context.Context, runner *pipeline.Runner, username, output string) error {
	prog := newProgress(loggerFromContext(ctx))

	s, err := runner.Summarize(ctx, username)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	data = append(data, '\n')

	if output == "" {
		output = "-"
	}
	if err := writeOutput(ctx, output, data); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Summarized activity for @%s", username))
	return nil
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(ctx context.Context, path string, data []byte) error {
	logger := loggerFromContext(ctx)

	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Debugf("Wrote %d bytes to %s", len(data), path)
	return nil
}
