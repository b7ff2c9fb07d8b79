package response

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
	Field  string `json:"field,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ExistsResponse struct {
	ID     string `json:"id"`
	Exists bool   `json:"exists"`
}
