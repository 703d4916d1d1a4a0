package models

// Машинно-читаемые коды ошибок API.
const (
	ErrCodeValidation  = "VALIDATION_ERROR"
	ErrCodeInvalidMove = "INVALID_MOVE"
	ErrCodeGameOver    = "GAME_OVER"
	ErrCodeCancelled   = "REQUEST_CANCELLED"
	ErrCodeInternal    = "INTERNAL_ERROR"
)

// ErrorResponse - стандартный JSON-ответ об ошибке.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
