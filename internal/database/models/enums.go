package models

// SprintStatus is the lifecycle state of a sprint draft
type SprintStatus string

const (
	SprintStatusDraft       SprintStatus = "draft"
	SprintStatusNegotiating SprintStatus = "negotiating"
	SprintStatusScheduled   SprintStatus = "scheduled"
	SprintStatusInProgress  SprintStatus = "in_progress"
	SprintStatusComplete    SprintStatus = "complete"
	SprintStatusCancelled   SprintStatus = "cancelled"
)

// ContractStatus tracks the signature state of a sprint's contract
type ContractStatus string

const (
	ContractStatusNotLinked ContractStatus = "not_linked"
	ContractStatusDrafted   ContractStatus = "drafted"
	ContractStatusSigned    ContractStatus = "signed"
)

// ContainerType names the kind of container a line item belongs to
type ContainerType string

const (
	ContainerTypeSprint  ContainerType = "sprint"
	ContainerTypePackage ContainerType = "package"
)

// sprintTransitions lists the statuses reachable from each status
var sprintTransitions = map[SprintStatus][]SprintStatus{
	SprintStatusDraft:       {SprintStatusNegotiating, SprintStatusCancelled},
	SprintStatusNegotiating: {SprintStatusScheduled, SprintStatusCancelled},
	SprintStatusScheduled:   {SprintStatusInProgress},
	SprintStatusInProgress:  {SprintStatusComplete},
}

// IsValid checks if the SprintStatus is valid
func (s SprintStatus) IsValid() bool {
	switch s {
	case SprintStatusDraft, SprintStatusNegotiating, SprintStatusScheduled,
		SprintStatusInProgress, SprintStatusComplete, SprintStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Re-applying the current status is always allowed.
func (s SprintStatus) CanTransitionTo(next SprintStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range sprintTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid checks if the ContractStatus is valid
func (c ContractStatus) IsValid() bool {
	switch c {
	case ContractStatusNotLinked, ContractStatusDrafted, ContractStatusSigned:
		return true
	}
	return false
}

// NormalizeContractStatus coerces unknown values to not_linked so replays stay idempotent
func NormalizeContractStatus(raw string) ContractStatus {
	c := ContractStatus(raw)
	if !c.IsValid() {
		return ContractStatusNotLinked
	}
	return c
}

// IsValid checks if the ContainerType is valid
func (c ContainerType) IsValid() bool {
	return c == ContainerTypeSprint || c == ContainerTypePackage
}
