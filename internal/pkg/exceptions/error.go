package exceptions

import (
	"afiatrack-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"error"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	last := e.Locations[len(e.Locations)-1]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, last.File, last.Line, last.FunctionName)
}

// BuildNewCustomError wraps err into a CustomError. When err already is a
// CustomError its status and messages are kept and only the caller location
// is appended, so the trace grows as the error bubbles up.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)

	var existing *CustomError
	if errors.As(err, &existing) {
		return &CustomError{
			StatusCode:    existing.StatusCode,
			ClientMessage: existing.ClientMessage,
			DevMessage:    existing.DevMessage,
			Locations:     append(append([]Location{}, existing.Locations...), location),
		}
	}

	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{location},
	}
}

// StatusCodeOf reports the HTTP status carried by err, or 500 when err is
// not a CustomError.
func StatusCodeOf(err error) int {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return constvars.StatusInternalServerError
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ErrFileLocationUnknown,
			Line:         0,
			FunctionName: constvars.ErrFunctionNameUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
