package sanipath

// SanitizeResponse is the response format for the /sanitize endpoint
type SanitizeResponse struct {
	Original  string   `json:"original"`
	Sanitized string   `json:"sanitized"`
	Changed   bool     `json:"changed"`
	Warnings  []string `json:"warnings,omitempty"`
}

// NodeResponse is the response format for the /node endpoint
type NodeResponse struct {
	Original  string `json:"original"`
	Sanitized string `json:"sanitized"`
	Changed   bool   `json:"changed"`
}

// ErrorResponse is the response format for failed requests
type ErrorResponse struct {
	Error string `json:"error"`
}
