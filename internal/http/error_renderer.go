package httpx

import (
	"net/http"

	errorsx "github.com/stockworks/stockworks-api/internal/errors"
)

// statusForCode maps an application error code to an HTTP status. Channel-level
// failures (both data channels down, integration unconfigured) surface as 503
// so callers can retry; upstream protocol and credential failures surface as
// 502 because retrying without operator intervention will not help.
func statusForCode(code errorsx.ErrorCode) int {
	switch code {
	case errorsx.ErrCodeNotFound:
		return http.StatusNotFound
	case errorsx.ErrCodeConflict, errorsx.ErrCodeForeignKey:
		return http.StatusConflict
	case errorsx.ErrCodeValidation:
		return http.StatusBadRequest
	case errorsx.ErrCodeUnavailable, errorsx.ErrCodeNotConfigured:
		return http.StatusServiceUnavailable
	case errorsx.ErrCodeAuthentication, errorsx.ErrCodeIntegration:
		return http.StatusBadGateway
	case errorsx.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// WriteAppError renders an application error as a JSON response, deriving the
// HTTP status and error code from the error's classification. Errors without a
// classification render as a generic 500.
func WriteAppError(w http.ResponseWriter, err error) {
	code := errorsx.GetCode(err)
	if code == "" {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal", Err: err})
		return
	}
	WriteError(w, ErrorParams{
		Code:    statusForCode(code),
		ErrCode: string(code),
		Err:     err,
		Field:   errorsx.GetField(err),
	})
}
