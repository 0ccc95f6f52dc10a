package service

import "errors"

var (
	// ErrCarritoVacio: a sale cannot be committed from an empty cart.
	ErrCarritoVacio = errors.New("el carrito esta vacio")
	// ErrCantidadInvalida: replenishment quantities must be strictly positive.
	ErrCantidadInvalida = errors.New("la cantidad debe ser mayor a cero")
	// ErrFechaInvalida: the date-correction input does not parse to an instant.
	ErrFechaInvalida = errors.New("fecha invalida")
	// ErrMetodoPagoInvalido: unknown payment method on commit.
	ErrMetodoPagoInvalido = errors.New("metodo de pago invalido")
)
