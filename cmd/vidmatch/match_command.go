package main

import (
	"github.com/spf13/cobra"

	"vidmatch/internal/matching"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var noDelay bool

	cmd := &cobra.Command{
		Use:   "match <url>",
		Short: "Match a YouTube URL against the catalog",
		Long: "Extract the video ID from a YouTube URL and look it up in the catalog.\n\n" +
			"A no-match result is not an error; the exit status is non-zero only when\n" +
			"the command itself fails.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw string
			if len(args) > 0 {
				raw = args[0]
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			var opts []matching.Option
			if !jsonOutput {
				opts = append(opts, matchingNotifier(out, colorize))
			}

			svc, err := ctx.newService(cmd, noDelay, opts...)
			if err != nil {
				return err
			}
			res, err := svc.Match(cmd.Context(), raw)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			printLines(out, matchLines(res, colorize))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the match result as JSON")
	cmd.Flags().BoolVar(&noDelay, "no-delay", false, "Skip the simulated API latency")
	return cmd
}
