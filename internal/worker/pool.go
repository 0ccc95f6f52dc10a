package worker

import (
	"context"

	"github.com/rs/zerolog/log"
)

const (
	// TipoConsejo refreshes the cached AI inventory advice after the sale
	// count changes.
	TipoConsejo = "consejo"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type string
}

// ConsejoRefresher is implemented by the advice service; defined here so the
// pool does not depend on the service package.
type ConsejoRefresher interface {
	Refrescar(ctx context.Context)
}

// WorkerHandlers groups the per-type job handlers wired at the composition root.
type WorkerHandlers struct {
	Consejo ConsejoRefresher
}

// Dispatcher enqueues async jobs into an in-process channel. Enqueueing is
// strictly fire-and-forget: a full queue drops the job rather than blocking
// the caller, so a slow advice fetch can never stall a sale.
type Dispatcher struct {
	jobs chan Job
}

func NewDispatcher(buffer int) *Dispatcher {
	if buffer < 1 {
		buffer = 16
	}
	return &Dispatcher{jobs: make(chan Job, buffer)}
}

// EncolarConsejo schedules an advice refresh. Never blocks.
func (d *Dispatcher) EncolarConsejo() {
	select {
	case d.jobs <- Job{Type: TipoConsejo}:
	default:
		log.Debug().Msg("cola de trabajos llena; se descarta refresco de consejo")
	}
}

// StartWorkerPool launches numWorkers goroutines consuming the job channel.
// Each goroutine blocks on the channel — zero CPU when idle.
func StartWorkerPool(ctx context.Context, d *Dispatcher, handlers *WorkerHandlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, d.jobs, handlers, i)
	}
	log.Info().Msgf("worker pool iniciado con %d workers", numWorkers)
}

func runWorker(ctx context.Context, jobs <-chan Job, handlers *WorkerHandlers, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d detenido", id)
			return
		case job := <-jobs:
			processJob(ctx, handlers, job)
		}
	}
}

func processJob(ctx context.Context, handlers *WorkerHandlers, job Job) {
	switch job.Type {
	case TipoConsejo:
		if handlers.Consejo != nil {
			handlers.Consejo.Refrescar(ctx)
		}
	default:
		log.Error().Str("type", job.Type).Msg("tipo de trabajo desconocido")
	}
}
