package response

// ErrResp is the standard JSON error body.
type ErrResp struct {
	Error string `json:"error"`
}

// MsgResp is the standard JSON body for acknowledged actions.
type MsgResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
