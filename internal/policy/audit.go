package policy

import (
	"github.com/vpraion/homedia/internal/config"
)

// RecommendedKbps scales the genre's 1080p baseline bitrate by pixel count,
// never dropping below the configured floor.
func RecommendedKbps(genre Genre, pixels int, cfg config.Audit) int64 {
	base := int64(cfg.AnimeKbps)
	switch genre {
	case GenreMovie:
		base = int64(cfg.MovieKbps)
	case GenreCartoon:
		base = int64(cfg.CartoonKbps)
	case GenreAnime:
		base = int64(cfg.AnimeKbps)
	}

	reco := base * int64(pixels) / ReferencePixels
	if floor := int64(cfg.FloorKbps); reco < floor {
		return floor
	}
	return reco
}

// AuditThreshold is the observed bitrate above which a file counts as
// oversized: the recommendation plus the configured margin, with truncating
// integer math (margin 10 yields reco + reco/10).
func AuditThreshold(recommendedKbps int64, marginPercent int) int64 {
	return recommendedKbps + recommendedKbps*int64(marginPercent)/100
}

// DecideAudit resolves the bitrate-audit pipeline's decision for a file.
// Codec identity is never consulted here: an oversized file is a re-encode
// candidate even when it is already AV1.
func DecideAudit(observedKbps, recommendedKbps int64, marginPercent int) Decision {
	if observedKbps > AuditThreshold(recommendedKbps, marginPercent) {
		return Decision{Action: ActionReEncode, TargetKbps: recommendedKbps}
	}
	return Decision{Action: ActionSkip}
}
