package http

// APIResponse is the envelope for errors and auxiliary payloads. Scan
// results are written bare so browser clients read the fields directly.
type APIResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// APIResponse400Err is the body of a request validation failure.
type APIResponse400Err struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    []ValidationError `json:"data,omitempty"`
}

// APIErrorResponse is the body of any AppError response.
type APIErrorResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    []*AppError `json:"data,omitempty"`
}

// ValidationError describes one rejected request field.
type ValidationError struct {
	Code    string                 `json:"code,omitempty"`
	Field   string                 `json:"field,omitempty"`
	Message string                 `json:"message,omitempty"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
