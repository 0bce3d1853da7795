package workflow

// Summary accumulates the run counters. It is owned by the driver loop and
// mutated only between files; no synchronization is needed.
type Summary struct {
	Analyzed      int
	MetadataSkips int
	AlreadyTarget int
	Candidates    int
	ReEncoded     int
	Failed        int

	// Bitrate audit only: running sums for the closing averages.
	ObservedKbpsSum    int64
	RecommendedKbpsSum int64
}

func (s *Summary) record(outcome Outcome) {
	switch outcome {
	case OutcomeMetadataSkip:
		s.MetadataSkips++
	case OutcomeAlreadyTarget:
		s.AlreadyTarget++
	case OutcomeSkip:
		// Counted through Analyzed only.
	case OutcomeCandidate:
		s.Candidates++
	case OutcomeReEncoded:
		s.Candidates++
		s.ReEncoded++
	case OutcomeFailed:
		s.Candidates++
		s.Failed++
	}
}

// Empty reports whether the scan yielded no files at all.
func (s Summary) Empty() bool {
	return s.Analyzed == 0 && s.MetadataSkips == 0
}

// AverageObservedKbps is the mean observed bitrate across analyzed files.
func (s Summary) AverageObservedKbps() int64 {
	if s.Analyzed == 0 {
		return 0
	}
	return s.ObservedKbpsSum / int64(s.Analyzed)
}

// AverageRecommendedKbps is the mean recommended bitrate across analyzed files.
func (s Summary) AverageRecommendedKbps() int64 {
	if s.Analyzed == 0 {
		return 0
	}
	return s.RecommendedKbpsSum / int64(s.Analyzed)
}
