package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorDetail describes one problem found in a wire document.
type ErrorDetail struct {
	Kind     string `json:"kind"`
	Entity   string `json:"entity,omitempty"`
	Field    string `json:"field,omitempty"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
	Token    string `json:"token,omitempty"`
	Message  string `json:"message"`
}
