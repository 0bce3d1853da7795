package main

import (
	"github.com/spf13/cobra"
)

func newAuditCommand(ctx *commandContext) *cobra.Command {
	var media string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "audit <root>",
		Short: "Re-encode files whose bitrate exceeds the genre recommendation",
		Long: `Walks the library rooted at <root>, estimates each file's video bitrate from
its size and duration, and re-encodes any file exceeding the genre's
resolution-scaled recommendation by more than the configured margin. The
current codec does not matter: an oversized AV1 file is still oversized.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.runPipeline(cmd, modeAudit, media, args[0], dryRun)
		},
	}

	cmd.Flags().StringVar(&media, "media", "", "Library genre: anime, movie, or cartoon")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report decisions without invoking the encoder")
	_ = cmd.MarkFlagRequired("media")
	return cmd
}
