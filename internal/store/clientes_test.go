package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
)

func TestMostradorSembradoAlConstruir(t *testing.T) {
	s := NewClienteStore()

	m := s.Mostrador()
	assert.Equal(t, "CONSUMIDOR FINAL", m.Nombre)
	assert.Equal(t, "2222222222", m.Documento)
	assert.Equal(t, "0", m.Telefono)
	assert.Equal(t, "MOSTRADOR", m.Direccion)

	require.Len(t, s.List(), 1)
}

func TestCrearGuardaNombreEnMayusculas(t *testing.T) {
	s := NewClienteStore()

	c := s.Crear(model.Cliente{Nombre: "Juan Pérez", Documento: "1094567890"})
	assert.Equal(t, "JUAN PÉREZ", c.Nombre)

	got, err := s.Get(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "JUAN PÉREZ", got.Nombre)
}

func TestCrearNoExigeDocumentoUnico(t *testing.T) {
	s := NewClienteStore()

	a := s.Crear(model.Cliente{Nombre: "Ana", Documento: "123456"})
	b := s.Crear(model.Cliente{Nombre: "Bea", Documento: "123456"})

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, s.List(), 3) // mostrador + 2
}

func TestGetClienteDesconocido(t *testing.T) {
	s := NewClienteStore()
	_, err := s.Get(uuid.New())
	assert.ErrorIs(t, err, ErrClienteNoEncontrado)
}
