package policy

import (
	"fmt"
	"strings"
)

// Genre selects the baseline quality parameters for a library.
type Genre string

const (
	GenreAnime   Genre = "anime"
	GenreMovie   Genre = "movie"
	GenreCartoon Genre = "cartoon"
)

// Genres lists the accepted media kinds in display order.
var Genres = []Genre{GenreAnime, GenreMovie, GenreCartoon}

// ParseGenre validates a --media flag value.
func ParseGenre(value string) (Genre, error) {
	switch Genre(strings.ToLower(strings.TrimSpace(value))) {
	case GenreAnime:
		return GenreAnime, nil
	case GenreMovie:
		return GenreMovie, nil
	case GenreCartoon:
		return GenreCartoon, nil
	default:
		return "", fmt.Errorf("unknown media kind %q (expected anime, movie, or cartoon)", value)
	}
}

func (g Genre) String() string {
	return string(g)
}
