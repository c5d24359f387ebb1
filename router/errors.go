package router

var (
	// ErrInvalidData is sent when a value in request is invalid
	ErrInvalidData = "INVALID_DATA"
	// ErrInternal is send when a internal server error occurs.
	ErrInternal = "INTERNAL_ERROR"
	// ErrParsing is sent when an error occurs in parsing the request
	ErrParsing = "PARSING_ERROR"
	// ErrNotFound is sent when the requested post does not exist
	ErrNotFound = "NOT_FOUND"
	// ErrUnauthorized is sent when a request carries no valid session token
	ErrUnauthorized = "UNAUTHORIZED"
	// ErrForbidden is sent when a user edits or deletes a post they did not write
	ErrForbidden = "FORBIDDEN"
	// ErrInvalidCredentials is sent when login fails
	ErrInvalidCredentials = "INVALID_CREDENTIALS"
)
