package job

import (
	"fmt"
	"time"
)

// HowHeard records how the customer found the shop. Exactly one per job,
// keyed by the job identifier; its presence marks the job as finalized.
type HowHeard struct {
	jobID     uint
	source    string
	createdAt time.Time
}

func NewHowHeard(jobID uint, source string, now time.Time) (*HowHeard, error) {
	if jobID == 0 {
		return nil, fmt.Errorf("job ID cannot be zero")
	}
	if source == "" {
		return nil, fmt.Errorf("source is required")
	}
	return &HowHeard{
		jobID:     jobID,
		source:    source,
		createdAt: now,
	}, nil
}

func ReconstructHowHeard(jobID uint, source string, createdAt time.Time) *HowHeard {
	return &HowHeard{jobID: jobID, source: source, createdAt: createdAt}
}

func (h *HowHeard) JobID() uint          { return h.jobID }
func (h *HowHeard) Source() string       { return h.source }
func (h *HowHeard) CreatedAt() time.Time { return h.createdAt }

// SourceCount is a per-source tally used by the marketing stats view.
type SourceCount struct {
	Source string
	Count  int64
}
