package gateway

import "fmt"

// BusinessError is an envelope with code != 200. The backend already phrased
// Message for the user.
type BusinessError struct {
	Code    int
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

// AuthError is an HTTP 401. The gateway has already forced a logout by the
// time callers see it.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// HTTPError is any non-401 HTTP failure status.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NetworkError means no HTTP response was received at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error, please check the connection"
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// statusMessage maps an HTTP failure status to fixed user-facing text when
// the response body carries no envelope message.
func statusMessage(status int) string {
	switch status {
	case 400:
		return "bad request parameters"
	case 401:
		return "unauthorized, please log in"
	case 403:
		return "access denied"
	case 404:
		return "resource not found"
	case 500:
		return "internal server error"
	case 502:
		return "bad gateway"
	case 503:
		return "service unavailable"
	case 504:
		return "gateway timeout"
	default:
		return fmt.Sprintf("request failed (%d)", status)
	}
}
