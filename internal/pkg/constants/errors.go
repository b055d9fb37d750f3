package constants

import (
	"errors"
	"net/http"
)

// CodedError несёт HTTP-код, с которым ошибку отдаёт httpErrorHandler.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound         = NewCodedError("not found in db", http.StatusNotFound)
	ErrBadRequest         = NewCodedError("bad request", http.StatusBadRequest)
	ErrIntegrityViolation = NewCodedError("stored registration data violates integrity constraints", http.StatusInternalServerError)
	ErrStoreUnavailable   = NewCodedError("registration store unavailable", http.StatusServiceUnavailable)
)

// CodeOf возвращает HTTP-код первой CodedError в цепочке err.
func CodeOf(err error) int {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return http.StatusInternalServerError
}
