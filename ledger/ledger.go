package ledger

import (
    "log"
    "sync"

    "gorm.io/gorm"

    "investpro/config"
)

// Service is the sole mutator of user balances. Every transition runs under
// the owning user's mutex and inside a single DB transaction, so a partial
// write is rolled back as if the transition never started. Different users
// proceed fully in parallel.
type Service struct {
    db  *gorm.DB
    cfg *config.Config

    mtx   sync.RWMutex
    locks map[uint]*sync.Mutex
}

func New(db *gorm.DB, cfg *config.Config) *Service {
    return &Service{
        db:    db,
        cfg:   cfg,
        locks: make(map[uint]*sync.Mutex),
    }
}

func (s *Service) userLock(userID uint) *sync.Mutex {
    s.mtx.RLock()
    l, exists := s.locks[userID]
    s.mtx.RUnlock()
    if exists {
        return l
    }

    s.mtx.Lock()
    defer s.mtx.Unlock()
    if l, exists = s.locks[userID]; exists {
        return l
    }
    l = &sync.Mutex{}
    s.locks[userID] = l
    return l
}

// rollback undoes a partial transition. A failed rollback leaves the ledger
// inconsistent, so it is logged with enough detail to replay by hand.
func (s *Service) rollback(tx *gorm.DB, op string, userID uint, amount float64) {
    if err := tx.Rollback().Error; err != nil {
        log.Printf("FATAL: rollback failed, manual reconciliation required: op=%s user=%d amount=%.2f: %v",
            op, userID, amount, err)
    }
}

func (s *Service) commit(tx *gorm.DB, op string, userID uint, amount float64) error {
    if err := tx.Commit().Error; err != nil {
        log.Printf("FATAL: commit failed: op=%s user=%d amount=%.2f: %v", op, userID, amount, err)
        s.rollback(tx, op, userID, amount)
        return err
    }
    return nil
}
