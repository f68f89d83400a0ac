package models

// ErrorResponse is the API's error payload. The backend puts a human-readable
// message in Detail; the client passes it through verbatim.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
