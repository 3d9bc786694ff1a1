package apperror

import "errors"

type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP resolves err into a status and message. An *AppError anywhere in the
// chain decides the status; anything else is reported with fallbackStatus and
// the underlying error text.
func ToHTTP(err error, fallbackStatus int) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	code := CodeInternalError
	if fallbackStatus < 500 {
		code = CodeInvalidInput
	}
	return HTTPError{
		Status:  fallbackStatus,
		Code:    code,
		Message: err.Error(),
	}
}
