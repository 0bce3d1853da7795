package workflow

// Outcome is the terminal state of one file within a run.
type Outcome int

const (
	// OutcomeMetadataSkip: the probe could not establish enough metadata.
	OutcomeMetadataSkip Outcome = iota
	// OutcomeAlreadyTarget: the file is already in the target codec.
	OutcomeAlreadyTarget
	// OutcomeSkip: the file is within its acceptable bitrate range.
	OutcomeSkip
	// OutcomeCandidate: the file would be re-encoded, but this is a dry run.
	OutcomeCandidate
	// OutcomeReEncoded: the encoder succeeded and the original was replaced.
	OutcomeReEncoded
	// OutcomeFailed: the encoder failed; the original is untouched.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMetadataSkip:
		return "metadata-skip"
	case OutcomeAlreadyTarget:
		return "already-target"
	case OutcomeSkip:
		return "skip"
	case OutcomeCandidate:
		return "candidate"
	case OutcomeReEncoded:
		return "re-encoded"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}
