package model

import "github.com/google/uuid"

// Cliente is a directory entry. Nombre is stored upper-cased; Documento is the
// NIT or CC used as human identifier and is deliberately not unique.
type Cliente struct {
	ID        uuid.UUID
	Nombre    string
	Documento string
	Telefono  string
	Direccion string
}
