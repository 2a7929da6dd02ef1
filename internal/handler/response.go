package handler

import "github.com/labstack/echo/v4"

// Envelope is the uniform response body for every endpoint.  Data carries a
// string, an object or an array depending on the route; exactly one of Error
// and Message is typically set.
type Envelope struct {
	StatusCode int         `json:"statuscode"`
	Data       interface{} `json:"data"`
	Error      *string     `json:"error"`
	Message    *string     `json:"message"`
}

// respond writes a success envelope.  An empty message is serialized as null.
func respond(c echo.Context, code int, data interface{}, message string) error {
	var msg *string
	if message != "" {
		msg = &message
	}
	return c.JSON(code, Envelope{StatusCode: code, Data: data, Error: nil, Message: msg})
}

// respondError writes a failure envelope with the error text in the error
// field and an empty data string.
func respondError(c echo.Context, code int, errText string) error {
	return c.JSON(code, Envelope{StatusCode: code, Data: "", Error: &errText, Message: nil})
}
