package recommend

import "github.com/google/uuid"

// NewID returns a collision-free id such as "wish-3f0c...".
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
