package common

import (
	"crypto/sha256"

	"github.com/denisbrodbeck/machineid"
	"github.com/google/uuid"
)

// GetClientIdentifier derives a stable UUID for this installation, sent as
// the X-Client-Id header on every API request. The hardware machine id is
// hashed first so the raw id never leaves the host.
func GetClientIdentifier() uuid.UUID {
	id, err := machineid.ID()
	if err != nil {
		// No readable machine id; use a per-process random UUID instead.
		return uuid.New()
	}

	hash := sha256.Sum256([]byte(id))
	return uuid.UUID(hash[:16])
}
