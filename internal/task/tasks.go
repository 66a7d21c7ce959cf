package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypePurgeMemorialMedia = "memorial:purge_media"

type PurgeMemorialMediaPayload struct {
	Prefix string `json:"prefix"`
}

// NewPurgeMemorialMediaTask creates an Asynq task for purging every stored
// object under a memorial's storage prefix.
func NewPurgeMemorialMediaTask(prefix string) (*asynq.Task, error) {
	p := PurgeMemorialMediaPayload{Prefix: prefix}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal purge-memorial-media payload: %w", err)
	}
	return asynq.NewTask(TypePurgeMemorialMedia, data), nil
}

// ParsePurgeMemorialMediaPayload parses the task payload to PurgeMemorialMediaPayload.
func ParsePurgeMemorialMediaPayload(t *asynq.Task) (PurgeMemorialMediaPayload, error) {
	var p PurgeMemorialMediaPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return PurgeMemorialMediaPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
