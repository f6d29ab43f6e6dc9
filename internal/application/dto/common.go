package dto

// ErrorResponse cuerpo de error HTTP. Error repite Message para clientes que leen "error".
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// IDRequest cuerpo con solo el id (PUT/DELETE sin path param).
type IDRequest struct {
	ID string `json:"id"`
}

// MessageResponse respuesta con un mensaje de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse respuesta de /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
