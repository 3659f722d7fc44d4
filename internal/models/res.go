package models

// IDResponse is returned by every mutating endpoint.
type IDResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// ErrResponse carries a short human-readable error message.
type ErrResponse struct {
	Error string `json:"error"`
}

func MessageResponse(message, id string) IDResponse {
	return IDResponse{
		Message: message,
		ID:      id,
	}
}

func ErrorResponse(err string) ErrResponse {
	return ErrResponse{
		Error: err,
	}
}
