package dto

// ListParams defines query parameters for paginated listings.
type ListParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=200"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Remaining string `json:"remaining,omitempty"` // Remaining payable amount on overpayment
	Settled   string `json:"settled,omitempty"`   // Settled total when an amount goes below it
	Retryable bool   `json:"retryable,omitempty"` // Set on concurrency conflicts
}
