package worker

import (
	"log"
	"suraksha/service"
	"time"
)

// DispatchWorker is a background worker that retries station lookup and
// officer assignment for Active alerts that are still Unassigned, so an
// alert triggered while no station or officer was available eventually
// gets dispatched.
type DispatchWorker struct {
	alertService *service.AlertService
	interval     time.Duration
	batchSize    int
	stopChan     chan struct{}
	running      bool
}

// NewDispatchWorker creates a new dispatch worker
func NewDispatchWorker(
	alertService *service.AlertService,
	interval time.Duration,
	batchSize int,
) *DispatchWorker {
	if batchSize <= 0 {
		batchSize = 50
	}
	return &DispatchWorker{
		alertService: alertService,
		interval:     interval,
		batchSize:    batchSize,
		stopChan:     make(chan struct{}),
		running:      false,
	}
}

// Start starts the dispatch worker in a separate goroutine
func (w *DispatchWorker) Start() {
	if w.running {
		log.Println("Dispatch worker is already running")
		return
	}

	w.running = true
	log.Printf("Dispatch worker started (interval: %v)", w.interval)

	go w.run()
}

// Stop stops the dispatch worker
func (w *DispatchWorker) Stop() {
	if !w.running {
		return
	}

	log.Println("Stopping dispatch worker...")
	close(w.stopChan)
	w.running = false
	log.Println("Dispatch worker stopped")
}

func (w *DispatchWorker) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Process immediately on start
	w.processUnassigned()

	for {
		select {
		case <-ticker.C:
			w.processUnassigned()
		case <-w.stopChan:
			return
		}
	}
}

// processUnassigned re-runs dispatch for one batch of unassigned alerts.
// Idempotent; an alert that gets assigned drops out of the next scan.
func (w *DispatchWorker) processUnassigned() {
	assigned, err := w.alertService.RedispatchUnassigned(w.batchSize)
	if err != nil {
		log.Printf("Error redispatching unassigned alerts: %v", err)
		return
	}
	if assigned > 0 {
		log.Printf("Dispatch pass assigned %d alert(s)", assigned)
	}
}
