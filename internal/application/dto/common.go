package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OkResponse respuesta mínima para operaciones sin cuerpo.
type OkResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}
