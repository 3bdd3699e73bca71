package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"Backend-Scholarship-Finder/src/models"
)

const TypeImportScholarships = "scholarship:import"

// ImportPayload carries the whole upload; asynq stores it in Redis.
type ImportPayload struct {
	Filename string            `json:"filename"`
	Content  []byte            `json:"content"`
	Mode     models.ImportMode `json:"mode"`
	Actor    string            `json:"actor"`
}

func NewImportTask(p ImportPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeImportScholarships, payload), nil
}
