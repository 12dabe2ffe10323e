package valueobjects

import "fmt"

// Status represents the workshop state of a job.
type Status string

const (
	StatusInProgress      Status = "in_progress"
	StatusCompleted       Status = "completed"
	StatusCancelled       Status = "cancelled"
	StatusWaitingForParts Status = "waiting_for_parts"
	StatusPickedUp        Status = "picked_up"
)

func NewStatus(value string) (Status, error) {
	s := Status(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid job status: %s", value)
	}
	return s, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusCancelled, StatusWaitingForParts, StatusPickedUp:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// IsClosed reports whether the job has left the workshop flow.
// Closed jobs get an end timestamp when the status is recorded.
func (s Status) IsClosed() bool {
	return s == StatusCompleted || s == StatusPickedUp || s == StatusCancelled
}
