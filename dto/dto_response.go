package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResp struct {
	Status string `json:"status"`
}
