package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// ObjectKey builds a storage key for an uploaded file, namespaced by lot.
func ObjectKey(lotID, ext string) string {
	return fmt.Sprintf("%s/%s%s", lotID, uuid.New().String(), ext)
}
