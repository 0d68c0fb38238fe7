package clientdir

import (
	"strings"

	"healthtick/models"
)

// StaticDirectory serves a fixed client list from memory. Clients are
// reference data owned elsewhere; this directory is seeded once and read-only
// afterwards, so no locking is needed.
type StaticDirectory struct {
	clients []models.Client
	byID    map[string]models.Client
}

// NewStaticDirectory builds a directory over the given clients, preserving
// their order for List.
func NewStaticDirectory(clients []models.Client) *StaticDirectory {
	byID := make(map[string]models.Client, len(clients))
	for _, c := range clients {
		byID[c.ID] = c
	}
	return &StaticDirectory{clients: clients, byID: byID}
}

// NewSeededDirectory returns a directory preloaded with the demo client roster.
func NewSeededDirectory() *StaticDirectory {
	return NewStaticDirectory(seedClients)
}

func (d *StaticDirectory) Lookup(id string) (models.Client, error) {
	c, ok := d.byID[id]
	if !ok {
		return models.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (d *StaticDirectory) List() []models.Client {
	out := make([]models.Client, len(d.clients))
	copy(out, d.clients)
	return out
}

// Search matches a case-insensitive substring against client names and phone
// numbers. An empty query returns the full list.
func (d *StaticDirectory) Search(query string) []models.Client {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return d.List()
	}
	var matches []models.Client
	for _, c := range d.clients {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Phone), q) {
			matches = append(matches, c)
		}
	}
	return matches
}
