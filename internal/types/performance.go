package types

import "github.com/samber/lo"

type ReviewStatus string

const (
	ReviewStatusDraft        ReviewStatus = "draft"
	ReviewStatusSubmitted    ReviewStatus = "submitted"
	ReviewStatusAcknowledged ReviewStatus = "acknowledged"
)

func (s ReviewStatus) IsValid() bool {
	return lo.Contains([]ReviewStatus{
		ReviewStatusDraft,
		ReviewStatusSubmitted,
		ReviewStatusAcknowledged,
	}, s)
}

const (
	MinReviewRating = 1
	MaxReviewRating = 5
)
