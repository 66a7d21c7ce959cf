package model

import (
	"time"

	"github.com/fhuszti/memorials-ms-go/internal/uuid"
)

type Comment struct {
	ID         uuid.UUID `json:"id"`
	MemorialID uuid.UUID `json:"memorial_id"`
	Name       *string   `json:"name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}
