package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type refrescadorStub struct{ hecho chan struct{} }

func (r *refrescadorStub) Refrescar(context.Context) {
	r.hecho <- struct{}{}
}

func TestPoolProcesaTrabajosDeConsejo(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stub := &refrescadorStub{hecho: make(chan struct{}, 1)}
	d := NewDispatcher(4)
	StartWorkerPool(ctx, d, &WorkerHandlers{Consejo: stub}, 1)

	d.EncolarConsejo()

	select {
	case <-stub.hecho:
	case <-time.After(2 * time.Second):
		t.Fatal("el trabajo de consejo nunca se proceso")
	}
}

func TestEncolarConsejoNuncaBloquea(t *testing.T) {
	// sin workers corriendo, llenar la cola y seguir encolando debe retornar
	d := NewDispatcher(1)
	terminado := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.EncolarConsejo()
		}
		close(terminado)
	}()

	select {
	case <-terminado:
	case <-time.After(time.Second):
		t.Fatal("EncolarConsejo bloqueo con la cola llena")
	}
}

func TestPoolIgnoraHandlerNulo(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := NewDispatcher(1)
	StartWorkerPool(ctx, d, &WorkerHandlers{}, 1)

	assert.NotPanics(t, func() {
		d.EncolarConsejo()
		time.Sleep(50 * time.Millisecond)
	})
}
