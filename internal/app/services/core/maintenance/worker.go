package maintenance

import (
	"afiatrack-service/internal/app/config"
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/pkg/constvars"
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	leaderLockKey    = "maintenance:leader"
	leaderLockTTL    = 2 * time.Minute
	fallbackSchedule = "@daily"
)

// Worker runs periodic housekeeping over the record store. Only the instance
// holding the leader lock does the work on a given tick.
type Worker struct {
	log    *zap.Logger
	cfg    *config.InternalConfig
	locker contracts.LockerService
	codes  contracts.RecordStore[*models.VerificationCode]
	cron   *cron.Cron
	runCtx context.Context
	cancel context.CancelFunc
	now    func() time.Time
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerService contracts.LockerService, codes contracts.RecordStore[*models.VerificationCode]) *Worker {
	return &Worker{
		log:    log,
		cfg:    cfg,
		locker: lockerService,
		codes:  codes,
		now:    time.Now,
	}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(w.cfg.App.MaintenanceCronSpec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("maintenance.Worker invalid cron spec, using @daily",
			zap.String("spec", w.cfg.App.MaintenanceCronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackSchedule, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels the current run and waits for it to return.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) int {
	acquired, token, err := w.locker.TryLock(ctx, leaderLockKey, leaderLockTTL)
	if err != nil {
		w.log.Warn("maintenance.Worker leader lock attempt failed", zap.Error(err))
		return 0
	}
	if !acquired {
		w.log.Info("maintenance.Worker leader lock held by another instance")
		return 0
	}
	defer w.locker.Unlock(ctx, leaderLockKey, token)

	purged, err := w.purgeExpiredCodes(ctx)
	if err != nil {
		w.log.Error("maintenance.Worker error purging verification codes", zap.Error(err))
	}
	w.log.Info("maintenance.Worker run finished",
		zap.Int(constvars.LoggingCountKey, purged),
	)
	return purged
}

// purgeExpiredCodes drops verification codes past their expiry. A user asks
// for a fresh code anyway once the old one expired.
func (w *Worker) purgeExpiredCodes(ctx context.Context) (int, error) {
	codes, err := w.codes.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	now := w.now()
	purged := 0
	for _, code := range codes {
		if !code.ExpiresAt.Before(now) {
			continue
		}
		deleted, err := w.codes.Delete(ctx, code.UserID, code.ID)
		if err != nil {
			return purged, err
		}
		if deleted {
			purged++
		}
	}
	return purged, nil
}
