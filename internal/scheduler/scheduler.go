package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/brightdesk-dev/brightdesk/internal/models"
	"github.com/brightdesk-dev/brightdesk/internal/services"
)

// Scheduler runs the background overdue-invoice sweep. Pending
// invoices whose due date has passed are flipped to OVERDUE on every
// tick.
type Scheduler struct {
	invoices *services.InvoiceService
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func New(invoices *services.InvoiceService, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		invoices: invoices,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start launches the sweep loop. The first sweep runs immediately.
func (s *Scheduler) Start() {
	log.Printf("Starting overdue invoice sweep every %s", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.sweep()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

// Stop cancels the loop and waits for an in-flight sweep to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	log.Println("Overdue invoice sweep stopped")
}

func (s *Scheduler) sweep() {
	marked, err := s.invoices.MarkOverdue(models.Today())
	if err != nil {
		log.Printf("Overdue sweep failed: %v", err)
		return
	}
	if marked > 0 {
		log.Printf("Marked %d invoices overdue", marked)
	}
}
