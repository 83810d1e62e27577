package request_models

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type SummaryRequest struct {
	// WindowSize bounds how many of the most recent records are sent to
	// the external summarizer. Zero means the service default.
	WindowSize int `json:"window_size"`
}
