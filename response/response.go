package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Data any `json:"data"`
}

type TokenResponse struct {
	Token string `json:"token"`
	UID   uint   `json:"user_id"`
	Name  string `json:"name"`
}
