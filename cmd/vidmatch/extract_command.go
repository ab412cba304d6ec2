package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vidmatch/internal/services"
	"vidmatch/internal/videoid"
)

func newExtractCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "extract <url>",
		Short:       "Print the video ID embedded in a YouTube URL",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok := videoid.Extract(strings.TrimSpace(args[0]))
			if !ok {
				return services.Wrap(services.ErrValidation, "extract", "", fmt.Sprintf("no video id found in %q", args[0]), nil)
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}
