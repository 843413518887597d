package gemini

// APIError is returned when a Gemini call fails. Error reports the API's own
// message unchanged so it can be shown to the user verbatim; Op names the
// client operation for logs and errors.As.
type APIError struct {
	Op  string
	Err error
}

func (e *APIError) Error() string { return e.Err.Error() }

func (e *APIError) Unwrap() error { return e.Err }

func (c *Client) apiError(op string, err error) error {
	c.logger.Warn().Err(err).Str("op", op).Msg("gemini: call failed")
	return &APIError{Op: op, Err: err}
}
