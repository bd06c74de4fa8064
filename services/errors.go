package services

import "net/http"

// ServiceError is a typed error with an HTTP status code. The Message is the
// user-facing (localized) string rendered as {"error": message}.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func errInternal() *ServiceError {
	return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Ошибка сервера"}
}

func errNotFound(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusNotFound, Message: message}
}

func errBadRequest(message string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Message: message}
}
