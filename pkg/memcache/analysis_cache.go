package memcache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"csat/internal/models/db_models"
	"csat/internal/models/response_models"
)

// AnalysisCache keeps the latest summarizer output per record window so
// repeated summary requests do not re-hit the external service.
type AnalysisCache interface {
	Set(key string, result *response_models.AnalysisResult, ttl time.Duration)
	Get(key string) (*response_models.AnalysisResult, bool)
}

type entry struct {
	result    *response_models.AnalysisResult
	expiresAt time.Time
}

type analysisCache struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewAnalysisCache() AnalysisCache {
	return &analysisCache{
		data: make(map[string]entry),
	}
}

func (c *analysisCache) Set(key string, result *response_models.AnalysisResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = entry{
		result:    result,
		expiresAt: time.Now().Add(ttl),
	}
}

func (c *analysisCache) Get(key string) (*response_models.AnalysisResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.result, true
}

// WindowKey fingerprints a record window by the ids it contains, so a new
// submission invalidates the cached analysis naturally.
func WindowKey(records []db_models.SurveyRecord) string {
	h := sha256.New()
	for _, r := range records {
		h.Write([]byte(r.ID))
	}
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}
