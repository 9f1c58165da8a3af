package models

import (
	"time"

	"github.com/google/uuid"
)

// Alert - SOS-оповещение, живет только в рамках одного запроса
type Alert struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
