package registration

import (
	"sync"

	"teamreg-bot/internal/models"
)

// Cache keeps the last completed registration per user. Last write wins;
// the sheet remains the source of truth.
type Cache struct {
	mu    sync.Mutex
	teams map[string]models.Team
}

func NewCache() *Cache {
	return &Cache{teams: map[string]models.Team{}}
}

func (c *Cache) Put(userID string, t models.Team) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.teams[userID] = t
}

func (c *Cache) Get(userID string) (models.Team, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.teams[userID]
	return t, ok
}
