package server

import (
	"encoding/json"
	"net/http"

	appErrors "github.com/aleator1o/anunciosloc/pkg/errors"
)

type errorBody struct {
	Code    appErrors.Code `json:"code"`
	Message string         `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func respondError(w http.ResponseWriter, err error) {
	code := appErrors.CodeOf(err)
	msg := err.Error()
	if code == appErrors.CodeUnknown || code == appErrors.CodeInternal {
		// Internal detail never crosses the wire.
		code = appErrors.CodeInternal
		msg = "internal error"
	}
	respondJSON(w, statusOf(code), errorBody{Code: code, Message: msg})
}

func statusOf(code appErrors.Code) int {
	switch code {
	case appErrors.CodeInvalidArgument:
		return http.StatusBadRequest
	case appErrors.CodeNotFound:
		return http.StatusNotFound
	case appErrors.CodeAlreadyExists:
		return http.StatusConflict
	case appErrors.CodePermissionDenied:
		return http.StatusForbidden
	case appErrors.CodeUnauthenticated:
		return http.StatusUnauthorized
	case appErrors.CodeFailedPrecondition:
		return http.StatusConflict
	case appErrors.CodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	case appErrors.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
