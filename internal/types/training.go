package types

import "github.com/samber/lo"

type TrainingStatus string

const (
	TrainingStatusScheduled TrainingStatus = "scheduled"
	TrainingStatusOngoing   TrainingStatus = "ongoing"
	TrainingStatusCompleted TrainingStatus = "completed"
	TrainingStatusCancelled TrainingStatus = "cancelled"
)

func (s TrainingStatus) IsValid() bool {
	return lo.Contains([]TrainingStatus{
		TrainingStatusScheduled,
		TrainingStatusOngoing,
		TrainingStatusCompleted,
		TrainingStatusCancelled,
	}, s)
}

type EnrollmentStatus string

const (
	EnrollmentStatusEnrolled  EnrollmentStatus = "enrolled"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
)

func (s EnrollmentStatus) IsValid() bool {
	return lo.Contains([]EnrollmentStatus{
		EnrollmentStatusEnrolled,
		EnrollmentStatusCompleted,
		EnrollmentStatusDropped,
	}, s)
}
