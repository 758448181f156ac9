package types

import "github.com/samber/lo"

type JobStatus string

const (
	JobStatusDraft  JobStatus = "draft"
	JobStatusOpen   JobStatus = "open"
	JobStatusOnHold JobStatus = "on_hold"
	JobStatusClosed JobStatus = "closed"
)

func (s JobStatus) IsValid() bool {
	return lo.Contains([]JobStatus{JobStatusDraft, JobStatusOpen, JobStatusOnHold, JobStatusClosed}, s)
}

// ApplicationStage is the hiring pipeline position of an application
type ApplicationStage string

const (
	ApplicationStageApplied   ApplicationStage = "applied"
	ApplicationStageScreening ApplicationStage = "screening"
	ApplicationStageInterview ApplicationStage = "interview"
	ApplicationStageOffer     ApplicationStage = "offer"
	ApplicationStageHired     ApplicationStage = "hired"
	ApplicationStageRejected  ApplicationStage = "rejected"
)

var ApplicationStages = []ApplicationStage{
	ApplicationStageApplied,
	ApplicationStageScreening,
	ApplicationStageInterview,
	ApplicationStageOffer,
	ApplicationStageHired,
	ApplicationStageRejected,
}

func (s ApplicationStage) IsValid() bool {
	return lo.Contains(ApplicationStages, s)
}

// IsTerminal reports whether no further stage moves are expected
func (s ApplicationStage) IsTerminal() bool {
	return s == ApplicationStageHired || s == ApplicationStageRejected
}
