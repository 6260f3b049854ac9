package run

import (
	"gohan/maf/models/maf"

	"github.com/google/uuid"
)

type State string

const (
	Queued  State = "Queued"
	Running State = "Running"
	Done    State = "Done"
	Error   State = "Error"
)

type RunRequest struct {
	Id              uuid.UUID       `json:"id"`
	State           State           `json:"state"`
	Seed            int64           `json:"seed"`
	Message         string          `json:"message"`
	OutputDirectory string          `json:"outputDirectory"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
	Summary         *maf.RunSummary `json:"summary,omitempty"`
}

func (r *RunRequest) IsActive() bool {
	return r.State == Queued || r.State == Running
}

type RunResponseDTO struct {
	Id      uuid.UUID `json:"id"`
	State   State     `json:"state"`
	Seed    int64     `json:"seed"`
	Message string    `json:"message"`
}
