package store

import "errors"

var (
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
	ErrVentaNoEncontrada    = errors.New("venta no encontrada")
	ErrClienteNoEncontrado  = errors.New("cliente no encontrado")
)
