package jobs

import (
	"github.com/sirupsen/logrus"
	"github.com/software11inc/bluedot/services"
)

// CacheCleanupJob sweeps expired response-cache entries. Lazy eviction on
// read keeps the cache correct on its own; this job only bounds memory for
// keys that stop being requested.
type CacheCleanupJob struct {
	cacheService *services.CacheService
}

func NewCacheCleanupJob(cacheService *services.CacheService) *CacheCleanupJob {
	return &CacheCleanupJob{cacheService: cacheService}
}

// Run performs one sweep
func (j *CacheCleanupJob) Run() {
	removed := j.cacheService.CleanupExpired()

	logrus.WithFields(logrus.Fields{
		"component":       "CacheCleanupJob",
		"entries_removed": removed,
		"entries_left":    j.cacheService.Size(),
	}).Info("Cache cleanup completed")
}
