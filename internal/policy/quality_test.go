package policy

import (
	"testing"

	"github.com/vpraion/homedia/internal/config"
)

func qualityDefaults() config.Quality {
	return config.Default().Quality
}

func TestParseGenre(t *testing.T) {
	for _, value := range []string{"anime", "Movie", " CARTOON "} {
		if _, err := ParseGenre(value); err != nil {
			t.Errorf("ParseGenre(%q) unexpected error: %v", value, err)
		}
	}
	for _, value := range []string{"", "tv", "animu"} {
		if _, err := ParseGenre(value); err == nil {
			t.Errorf("ParseGenre(%q) expected error", value)
		}
	}
}

func TestCRFBaselinesAt1080p(t *testing.T) {
	cfg := qualityDefaults()
	cases := map[Genre]int{
		GenreAnime:   31,
		GenreCartoon: 32,
		GenreMovie:   26,
	}
	for genre, want := range cases {
		if got := CRFFor(genre, ReferencePixels, cfg); got != want {
			t.Errorf("CRFFor(%s, 1080p) = %d, want %d", genre, got, want)
		}
	}
}

func TestCRFBucketBoundariesAreInclusive(t *testing.T) {
	cfg := qualityDefaults()
	cases := []struct {
		name   string
		pixels int
		want   int // movie baseline 26 plus adjustment
	}{
		{"ratio exactly 50 stays in low bucket", ReferencePixels * 50 / 100, 24},
		{"ratio 51 moves up", ReferencePixels*50/100 + ReferencePixels/100, 25},
		{"ratio exactly 80", ReferencePixels * 80 / 100, 25},
		{"ratio exactly 130", ReferencePixels * 130 / 100, 26},
		{"ratio exactly 200", ReferencePixels * 2, 27},
		{"ratio above 200", ReferencePixels*2 + ReferencePixels/2, 28},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CRFFor(GenreMovie, tc.pixels, cfg); got != tc.want {
				t.Fatalf("CRFFor(movie, %d px) = %d, want %d (ratio %d)",
					tc.pixels, got, tc.want, ResolutionRatio(tc.pixels))
			}
		})
	}
}

func TestCRFClampHoldsAtExtremes(t *testing.T) {
	cfg := qualityDefaults()
	pixelCases := []int{0, 1, ReferencePixels, ReferencePixels * 16, 1 << 40}
	for _, genre := range Genres {
		for _, pixels := range pixelCases {
			crf := CRFFor(genre, pixels, cfg)
			if crf < cfg.MinCRF || crf > cfg.MaxCRF {
				t.Errorf("CRFFor(%s, %d px) = %d outside [%d, %d]",
					genre, pixels, crf, cfg.MinCRF, cfg.MaxCRF)
			}
		}
	}

	// A tight clamp wins over the bucket adjustment.
	tight := cfg
	tight.MinCRF = 30
	tight.MaxCRF = 30
	if got := CRFFor(GenreMovie, 0, tight); got != 30 {
		t.Fatalf("clamped CRF = %d, want 30", got)
	}
}

func TestDecideQuality(t *testing.T) {
	cfg := qualityDefaults()

	// 1080p h264 movie re-encodes at the unchanged baseline.
	decision := DecideQuality("h264", GenreMovie, 1920*1080, cfg)
	if decision.Action != ActionReEncode || decision.CRF != 26 {
		t.Fatalf("unexpected decision for 1080p h264 movie: %+v", decision)
	}

	// AV1 is never touched by the quality pass, regardless of resolution.
	for _, codec := range []string{"av1", "av01"} {
		for _, pixels := range []int{640 * 480, 3840 * 2160} {
			decision := DecideQuality(codec, GenreAnime, pixels, cfg)
			if decision.Action != ActionAlreadyTarget {
				t.Fatalf("DecideQuality(%s, %d px) = %+v, want AlreadyTarget", codec, pixels, decision)
			}
		}
	}
}
