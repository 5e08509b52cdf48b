package ordermodels

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const ClientOrderIDLength = 20

// NewClientOrderID returns a 20 character upper case correlation id taken from
// a time based uuid. The uuid package serializes v1 generation behind a mutex
// and bumps the clock sequence when the clock has not moved, so ids generated
// concurrently in one process do not collide.
func NewClientOrderID() (string, error) {
	id, err := uuid.NewUUID()
	if err != nil {
		return "", fmt.Errorf("NewClientOrderID: failed to generate uuid: %w", err)
	}

	s := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))

	return s[:ClientOrderIDLength], nil
}
