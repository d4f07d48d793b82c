package dto

// Response envoltorio estándar de la API.
// Éxito:  {"success": true,  "data": {...}}
// Fallo:  {"success": false, "message": "..."}
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// OK construye una respuesta de éxito con datos.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// Fail construye una respuesta de error con mensaje para el usuario.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}
