package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/dto"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/store"
)

func clienteDePrueba(nombre string) model.Cliente {
	return model.Cliente{
		Nombre:    nombre,
		Documento: "1094567890",
		Telefono:  "3001234567",
		Direccion: "Calle 5 # 10-20",
	}
}

func TestRegistrarClienteNormalizaNombre(t *testing.T) {
	svc := NewClienteService(store.NewClienteStore())

	resp, err := svc.Registrar(context.Background(), dto.RegistrarClienteRequest{
		Nombre:    "Maria Lopez",
		Documento: "1094567890",
		Telefono:  "3001234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "MARIA LOPEZ", resp.Nombre)
	assert.NotEmpty(t, resp.ID)
}

func TestListarIncluyeMostrador(t *testing.T) {
	clientes := store.NewClienteStore()
	svc := NewClienteService(clientes)

	_, err := svc.Registrar(context.Background(), dto.RegistrarClienteRequest{
		Nombre:    "Pedro Gomez",
		Documento: "87654321",
	})
	require.NoError(t, err)

	resp, err := svc.Listar(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "CONSUMIDOR FINAL", resp.Data[0].Nombre)
	assert.Equal(t, "PEDRO GOMEZ", resp.Data[1].Nombre)
}
