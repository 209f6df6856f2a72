package dtos

// WebResponse is the standard envelope for successful responses.
type WebResponse[T any] struct {
	Message   string         `json:"message"`
	Data      T              `json:"data"`
	Details   []any          `json:"details,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Errors    *ErrorResponse `json:"errors,omitempty"`
}

type PaginationMeta struct {
	Skip  int64 `json:"skip"`
	Limit int64 `json:"limit"`
	Total int64 `json:"total"`
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
