package dto

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
