package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/store"
)

// ConsejoFallback replaces the advice text when the provider fails.
const ConsejoFallback = "No se pudo obtener el análisis de IA en este momento."

// consejoInicial is shown until the first refresh completes.
const consejoInicial = "Analizando inventario..."

// ConsejoProvider is the external generative-AI collaborator. Any error from
// it is swallowed by the service — advice never surfaces failures.
type ConsejoProvider interface {
	ConsejoInventario(ctx context.Context, productos []model.Producto, ventas []model.Venta) (string, error)
}

// ConsejoService caches the latest AI inventory advice. Refrescar runs on the
// worker pool after every committed sale; Actual serves the dashboard.
type ConsejoService struct {
	mu       sync.RWMutex
	actual   string
	provider ConsejoProvider
	catalogo *store.CatalogoStore
	ventas   *store.VentaStore
}

func NewConsejoService(provider ConsejoProvider, catalogo *store.CatalogoStore, ventas *store.VentaStore) *ConsejoService {
	return &ConsejoService{
		actual:   consejoInicial,
		provider: provider,
		catalogo: catalogo,
		ventas:   ventas,
	}
}

// Actual returns the cached advice text.
func (s *ConsejoService) Actual() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actual
}

// Refrescar asks the provider for fresh advice using the live catalog and the
// five most recent sales. Failures degrade to the fixed fallback string.
func (s *ConsejoService) Refrescar(ctx context.Context) {
	if s.provider == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	productos := s.catalogo.List(store.FiltroCatalogo{})
	ventas := s.ventas.List()
	if len(ventas) > 5 {
		ventas = ventas[len(ventas)-5:]
	}

	consejo, err := s.provider.ConsejoInventario(ctx, productos, ventas)
	if err != nil || consejo == "" {
		log.Warn().Err(err).Msg("no se pudo refrescar el consejo de IA")
		consejo = ConsejoFallback
	}

	s.mu.Lock()
	s.actual = consejo
	s.mu.Unlock()
}
