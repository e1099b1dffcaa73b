package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskRenewalSweep = "followups.renewal_sweep"

// RenewalSweepPayload limits a sweep to one organization. An empty
// OrganizationID sweeps every organization.
type RenewalSweepPayload struct {
	OrganizationID string `json:"organizationId,omitempty"`
}

func NewRenewalSweepTask(payload RenewalSweepPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskRenewalSweep, data), nil
}

func ParseRenewalSweepPayload(task *asynq.Task) (RenewalSweepPayload, error) {
	var payload RenewalSweepPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return RenewalSweepPayload{}, err
	}
	return payload, nil
}
