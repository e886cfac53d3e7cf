package pkg

// AppError is the error envelope returned by the HTTP layer: a stable
// machine-readable code, a user-facing message and the HTTP status to use.
// The wrapped cause never leaves the process.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewDomainError wraps an underlying cause.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewDomainErrorSimple builds an error with no underlying cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the JSON body written for a failed request.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToHTTPError strips the internal cause, keeping only code and message.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
