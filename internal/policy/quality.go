package policy

import (
	"github.com/vpraion/homedia/internal/config"
)

// ReferencePixels is the 1080p pixel count all resolution ratios are scaled
// against.
const ReferencePixels = 1920 * 1080

// Action is the outcome of a policy decision for one file.
type Action int

const (
	// ActionAlreadyTarget means the file is already in the target codec.
	ActionAlreadyTarget Action = iota
	// ActionSkip means the file is within the acceptable bitrate range.
	ActionSkip
	// ActionReEncode means the file should be transcoded with the decision's
	// parameters.
	ActionReEncode
)

// Decision pairs an action with the parameters a re-encode would use.
type Decision struct {
	Action     Action
	CRF        int
	TargetKbps int64
}

// IsTargetCodec reports whether a normalized codec identifier already names
// the AV1 target.
func IsTargetCodec(codec string) bool {
	return codec == "av1" || codec == "av01"
}

// ResolutionRatio expresses a pixel count as an integer percentage of 1080p.
func ResolutionRatio(pixels int) int {
	return pixels * 100 / ReferencePixels
}

// CRFFor selects the constant-rate-factor for a file: the genre baseline,
// shifted by the resolution ratio bucket, clamped to the configured bounds.
func CRFFor(genre Genre, pixels int, cfg config.Quality) int {
	base := cfg.MovieCRF
	switch genre {
	case GenreAnime:
		base = cfg.AnimeCRF
	case GenreCartoon:
		base = cfg.CartoonCRF
	case GenreMovie:
		base = cfg.MovieCRF
	}

	ratio := ResolutionRatio(pixels)
	switch {
	case ratio <= 50:
		base -= 2
	case ratio <= 80:
		base--
	case ratio <= 130:
		// 1080p neighborhood, baseline unchanged.
	case ratio <= 200:
		base++
	default:
		base += 2
	}

	if base < cfg.MinCRF {
		return cfg.MinCRF
	}
	if base > cfg.MaxCRF {
		return cfg.MaxCRF
	}
	return base
}

// DecideQuality resolves the constant-quality pipeline's decision for a file.
func DecideQuality(codec string, genre Genre, pixels int, cfg config.Quality) Decision {
	if IsTargetCodec(codec) {
		return Decision{Action: ActionAlreadyTarget}
	}
	return Decision{Action: ActionReEncode, CRF: CRFFor(genre, pixels, cfg)}
}
