package clientdir

import (
	"errors"

	"healthtick/models"
)

// ErrClientNotFound is returned when a lookup references an unknown client id.
var ErrClientNotFound = errors.New("client not found")

// Directory is the read-only client lookup collaborator. The scheduling core
// uses it for labeling and selection only; client records are never mutated.
type Directory interface {
	Lookup(id string) (models.Client, error)
	List() []models.Client
	Search(query string) []models.Client
}
