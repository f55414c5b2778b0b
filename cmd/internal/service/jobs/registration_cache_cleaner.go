package jobs

import (
	"context"
	"time"

	"brainagro/cmd/internal/domain/entity"
	"brainagro/cmd/internal/utils"

	"github.com/labstack/gommon/log"
)

const CleanInterval = 1 * time.Hour

type RegistrationRepository interface {
	DeleteExpired(ctx context.Context, foundBefore, missingBefore int64) (int64, error)
}

// RegistrationCacheCleaner drops cached registry answers once they expire.
type RegistrationCacheCleaner struct {
	registrationRepo RegistrationRepository
	interval         time.Duration
}

func NewRegistrationCacheCleaner(repo RegistrationRepository) *RegistrationCacheCleaner {
	return &RegistrationCacheCleaner{registrationRepo: repo, interval: CleanInterval}
}

// Start blocks, sweeping the cache on every tick until ctx is cancelled.
func (c *RegistrationCacheCleaner) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	log.Info("Registration cache cleaner started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping registration cache cleaner...")
			return
		case <-ticker.C:
			c.Sweep(ctx, utils.NowUTC())
		}
	}
}

// Sweep removes the entries expired at now and returns how many went away.
// Unknown CNPJs expire sooner than known ones.
func (c *RegistrationCacheCleaner) Sweep(ctx context.Context, now int64) int64 {
	foundBefore := now - entity.RegistrationTTL.Milliseconds()
	missingBefore := now - entity.MissingRegistrationTTL.Milliseconds()

	removed, err := c.registrationRepo.DeleteExpired(ctx, foundBefore, missingBefore)
	if err != nil {
		log.Errorf("Cleaner: failed to delete expired registrations: %v", err)
		return 0
	}

	log.Debugf("Cleaner: swept %d expired registrations", removed)
	return removed
}
