package service

import (
	"context"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/dto"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/store"
)

// ClienteService manages the customer directory.
type ClienteService interface {
	Registrar(ctx context.Context, req dto.RegistrarClienteRequest) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) (*dto.ClienteListResponse, error)
}

type clienteService struct {
	clientes *store.ClienteStore
}

func NewClienteService(clientes *store.ClienteStore) ClienteService {
	return &clienteService{clientes: clientes}
}

func (s *clienteService) Registrar(ctx context.Context, req dto.RegistrarClienteRequest) (*dto.ClienteResponse, error) {
	c := s.clientes.Crear(model.Cliente{
		Nombre:    req.Nombre,
		Documento: req.Documento,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
	})
	return clienteToResponse(c), nil
}

func (s *clienteService) Listar(ctx context.Context) (*dto.ClienteListResponse, error) {
	clientes := s.clientes.List()
	data := make([]dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		data = append(data, *clienteToResponse(c))
	}
	return &dto.ClienteListResponse{Data: data, Total: len(data)}, nil
}

func clienteToResponse(c model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID.String(),
		Nombre:    c.Nombre,
		Documento: c.Documento,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
	}
}
