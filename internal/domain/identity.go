package domain

import "github.com/google/uuid"

type Identity struct {
	Name      string
	Email     string
	SessionID uuid.UUID
}
