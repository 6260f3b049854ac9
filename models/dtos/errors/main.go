package errors

import (
	"gohan/maf/models/dtos"
	"net/http"
	"time"
)

/*
	Utility functions to facillitate returning error responses to HTTP clients
*/

func createSimple(code int, message string) dtos.GeneralErrorResponseDto {
	return dtos.GeneralErrorResponseDto{
		Code:      code,
		Message:   http.StatusText(code),
		Timestamp: time.Now(),
		Errors: []dtos.GeneralError{
			{
				Message: message,
			},
		},
	}
}

func CreateSimpleBadRequest(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusBadRequest, message)
}
func CreateSimpleNotFound(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusNotFound, message)
}
func CreateSimpleConflict(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusConflict, message)
}
func CreateSimpleInternalServerError(message string) dtos.GeneralErrorResponseDto {
	return createSimple(http.StatusInternalServerError, message)
}
