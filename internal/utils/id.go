package utils

import (
	"strings"

	"github.com/google/uuid"
)

// IdGenerator produces "<prefix><token>" identifiers such as "thread-1f0c9a…".
type IdGenerator struct{}

func (IdGenerator) NewId(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
