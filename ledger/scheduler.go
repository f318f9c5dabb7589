package ledger

import (
    "log"
    "time"

    "github.com/go-co-op/gocron/v2"
)

// StartAccrualScheduler runs the daily income sweep once per day at the
// configured time. The sweep itself is single-threaded; per-day stamping on
// each investment makes an accidental second run harmless.
func (s *Service) StartAccrualScheduler() {
    sched, err := gocron.NewScheduler()
    if err != nil {
        log.Fatalf("failed to create accrual scheduler: %v", err)
    }

    _, err = sched.NewJob(
        gocron.DailyJob(1, gocron.NewAtTimes(
            gocron.NewAtTime(uint(s.cfg.AccrualHour), uint(s.cfg.AccrualMinute), 0),
        )),
        gocron.NewTask(func() {
            started := time.Now()
            credited, err := s.AccrueDaily()
            if err != nil {
                log.Printf("[Accrual] sweep failed: %v", err)
                return
            }
            log.Printf("[Accrual] credited %d investment(s) in %s", credited, time.Since(started))
        }),
    )
    if err != nil {
        log.Fatalf("failed to schedule accrual job: %v", err)
    }

    sched.Start()
    log.Printf("Accrual scheduler started (daily at %02d:%02d)", s.cfg.AccrualHour, s.cfg.AccrualMinute)
}
