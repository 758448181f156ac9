package types

import "github.com/samber/lo"

type OnboardingTaskStatus string

const (
	OnboardingTaskStatusPending    OnboardingTaskStatus = "pending"
	OnboardingTaskStatusInProgress OnboardingTaskStatus = "in_progress"
	OnboardingTaskStatusCompleted  OnboardingTaskStatus = "completed"
)

func (s OnboardingTaskStatus) IsValid() bool {
	return lo.Contains([]OnboardingTaskStatus{
		OnboardingTaskStatusPending,
		OnboardingTaskStatusInProgress,
		OnboardingTaskStatusCompleted,
	}, s)
}
