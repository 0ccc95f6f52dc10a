package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarClienteRequest struct {
	Nombre    string `json:"nombre"    validate:"required,min=2,max=120"`
	Documento string `json:"documento" validate:"required,min=4,max=20"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Documento string `json:"documento"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

type ClienteListResponse struct {
	Data  []ClienteResponse `json:"data"`
	Total int               `json:"total"`
}
