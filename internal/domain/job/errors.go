package job

import "errors"

var (
	// ErrJobNotFound is returned when the referenced job does not exist.
	ErrJobNotFound = errors.New("job not found")

	// ErrDuplicateHowHeard is returned when a submission has already been
	// finalized for the job. Finalization is a one-time operation per reservation.
	ErrDuplicateHowHeard = errors.New("submission already finalized for this job")
)
