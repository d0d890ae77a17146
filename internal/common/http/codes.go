package http

const (
	CodeUnknown          = "UNKNOWN"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidJSON      = "INVALID_JSON"
	CodeInvalidForm      = "INVALID_FORM"
	CodeBodyTooLarge     = "REQUEST_BODY_TOO_LARGE"
	CodeRateLimited      = "RATE_LIMITED"
)
