package ctiscore

import "errors"

// Error kinds per spec §7. Each is a sentinel so callers can use errors.Is.
var (
	ErrInvalidArguments     = errors.New("invalid arguments")
	ErrMissingInput         = errors.New("missing input")
	ErrOutputConflict       = errors.New("output already exists")
	ErrMissingIndexArtifact = errors.New("missing index artifact")
	ErrRunParse             = errors.New("run file parse error")

	// ErrNoPostingList mirrors the teacher's sentinel-error style
	// (Zeeeepa-blaze's index.go) for a term with no posting list.
	ErrNoPostingList = errors.New("no posting list for term")
)
