package dto

// Los nombres de campo JSON son camelCase: es el formato que el cliente web
// original consume (companyId, partNumber, ...), y es contrato observable.

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
