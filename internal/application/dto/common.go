package dto

import "time"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UpdateStatusRequest entrada para transicionar el estado de un documento.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ProductRef referencia corta al producto adjunto en los listados.
type ProductRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Category string `json:"category"`
}

// dateLayouts formatos aceptados en campos de fecha de los requests.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate interpreta una fecha de request (RFC3339 o YYYY-MM-DD).
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
