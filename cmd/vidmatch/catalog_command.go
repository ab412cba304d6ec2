package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"vidmatch/internal/assets"
	"vidmatch/internal/textutil"
	"vidmatch/internal/videoid"
)

const catalogTitleWidth = 40

type catalogEntry struct {
	assets.Record
	VideoID string `json:"video_id,omitempty"`
}

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the assets known to the matcher",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			catalog, err := ctx.catalog(logger)
			if err != nil {
				return err
			}
			entries := catalogEntries(catalog)

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), entries)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderCatalogTable(entries))
			fmt.Fprintln(out, plural(len(entries), "record", "records"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the catalog as JSON")
	return cmd
}

func catalogEntries(catalog *assets.Catalog) []catalogEntry {
	records := catalog.Records()
	entries := make([]catalogEntry, 0, len(records))
	for _, rec := range records {
		id, _ := videoid.Extract(rec.SourceURL)
		entries = append(entries, catalogEntry{Record: rec, VideoID: id})
	}
	return entries
}

// renderCatalogTable draws one row per record. Records that can never match
// show "-" in the video ID column.
func renderCatalogTable(entries []catalogEntry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Asset", "Title", "Content ID", "Video ID"})
	for _, entry := range entries {
		videoID := entry.VideoID
		if videoID == "" {
			videoID = "-"
		}
		tw.AppendRow(table.Row{
			entry.AssetID,
			textutil.Truncate(entry.Title, catalogTitleWidth),
			entry.RegistryCode,
			videoID,
		})
	}
	return tw.Render()
}
