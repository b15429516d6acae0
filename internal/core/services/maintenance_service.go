package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"estatehub/internal/adapters/persistence/repositories"
)

// CronService runs scheduled maintenance jobs. Currently one job: a
// nightly sweep that re-derives price_per_sqm for rows whose stored
// value drifted from price/area.
type CronService struct {
	premiseRepo repositories.PremiseRepository
	cron        *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(premiseRepo repositories.PremiseRepository) *CronService {
	return &CronService{
		premiseRepo: premiseRepo,
		cron:        cron.New(),
	}
}

// Start registers the jobs and launches the scheduler
func (s *CronService) Start() {
	// 03:00 daily, off the traffic peak
	s.cron.AddFunc("0 3 * * *", s.recomputePricePerSqm)
	s.cron.Start()
	log.Println("🚀 CronService started")
}

// Stop gracefully stops the scheduler
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 CronService stopped")
}

func (s *CronService) recomputePricePerSqm() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	fixed, err := s.premiseRepo.RecomputeStalePricePerSqm(ctx)
	if err != nil {
		log.Printf("❌ price_per_sqm sweep error: %v", err)
		return
	}
	if fixed > 0 {
		log.Printf("🔧 price_per_sqm sweep fixed %d premises", fixed)
	}
}
