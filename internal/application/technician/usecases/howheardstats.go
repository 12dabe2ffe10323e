package usecases

import (
	"context"

	"repairbay/internal/domain/job"
	"repairbay/internal/shared/logger"
)

type HowHeardStatsResult struct {
	Sources []job.SourceCount
	Total   int64
}

// HowHeardStatsUseCase tallies where customers say they heard about the
// shop, ordered by popularity.
type HowHeardStatsUseCase struct {
	howHeardRepo job.HowHeardRepository
	logger       logger.Interface
}

func NewHowHeardStatsUseCase(howHeardRepo job.HowHeardRepository, logger logger.Interface) *HowHeardStatsUseCase {
	return &HowHeardStatsUseCase{
		howHeardRepo: howHeardRepo,
		logger:       logger,
	}
}

func (uc *HowHeardStatsUseCase) Execute(ctx context.Context) (*HowHeardStatsResult, error) {
	counts, err := uc.howHeardRepo.CountBySource(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count referral sources", "error", err)
		return nil, err
	}

	var total int64
	for _, c := range counts {
		total += c.Count
	}

	return &HowHeardStatsResult{
		Sources: counts,
		Total:   total,
	}, nil
}
