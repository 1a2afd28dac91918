package errors

import (
	stderrors "errors"
	"net/http"
	"reflect"

	"github.com/sirupsen/logrus"
)

type AppError struct {
	StatusCode int
	Message    string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(statusCode int, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func NewBadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message)
}

func NewNotFoundError(message ...string) *AppError {
	if len(message) > 0 {
		return NewAppError(http.StatusNotFound, message[0])
	}
	return NewAppError(http.StatusNotFound, "Not found")
}

func NewTooManyRequestsError(message string) *AppError {
	return NewAppError(http.StatusTooManyRequests, message)
}

func NewInternalServerError(originalError error, message string) *AppError {
	logrus.Errorf("[%s] %s", reflect.TypeOf(originalError).String(), originalError)
	return NewAppError(http.StatusInternalServerError, message)
}

// IsStatus reports whether err is an AppError carrying statusCode.
func IsStatus(err error, statusCode int) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr) && appErr.StatusCode == statusCode
}
