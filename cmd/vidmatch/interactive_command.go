package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const interactivePrompt = "youtube url> "

func newInteractiveCommand(ctx *commandContext) *cobra.Command {
	var noDelay bool

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Match URLs read line by line from stdin",
		Long: "Read one URL per line and print the match result after each line.\n" +
			"An empty line reports missing input. Stops at end of input or on interrupt.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			svc, err := ctx.newService(cmd, noDelay, matchingNotifier(out, colorize))
			if err != nil {
				return err
			}

			runCtx := cmd.Context()
			lines, readErr := readLines(runCtx, cmd.InOrStdin())
			fmt.Fprint(out, interactivePrompt)
			for {
				if err := runCtx.Err(); err != nil {
					fmt.Fprintln(out)
					return err
				}
				var line string
				var ok bool
				select {
				case <-runCtx.Done():
					fmt.Fprintln(out)
					return runCtx.Err()
				case line, ok = <-lines:
				}
				if !ok {
					fmt.Fprintln(out)
					if err := runCtx.Err(); err != nil {
						return err
					}
					if err := <-readErr; err != nil {
						return fmt.Errorf("read input: %w", err)
					}
					return nil
				}

				res, err := svc.Match(runCtx, line)
				if err != nil {
					fmt.Fprintln(out)
					return err
				}
				printLines(out, matchLines(res, colorize))
				fmt.Fprint(out, interactivePrompt)
			}
		},
	}

	cmd.Flags().BoolVar(&noDelay, "no-delay", false, "Skip the simulated API latency")
	return cmd
}

// readLines feeds lines from r until EOF or until ctx ends. The error channel
// receives the scanner result once lines is closed after EOF; it stays empty
// when the reader stopped because ctx ended.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errs := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errs <- scanner.Err()
	}()
	return lines, errs
}
