package res

type Response struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Code    string                 `json:"code,omitempty"`
	Data    map[string]interface{} `json:"body,omitempty"`
}

type ErrorRes struct {
	Err        error
	StatusCode int
	// Machine readable code, eg. user_mismatch
	Code string
}
