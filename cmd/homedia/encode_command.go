package main

import (
	"github.com/spf13/cobra"
)

func newEncodeCommand(ctx *commandContext) *cobra.Command {
	var media string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "encode <root>",
		Short: "Re-encode files not yet in AV1 at a genre-derived CRF",
		Long: `Walks the library rooted at <root> and re-encodes every video file that is
not already AV1. The CRF comes from the genre baseline shifted by the file's
resolution relative to 1080p. Audio and subtitle streams are copied verbatim
and the original is replaced only after a clean encoder exit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.runPipeline(cmd, modeQuality, media, args[0], dryRun)
		},
	}

	cmd.Flags().StringVar(&media, "media", "", "Library genre: anime, movie, or cartoon")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report decisions without invoking the encoder")
	_ = cmd.MarkFlagRequired("media")
	return cmd
}
