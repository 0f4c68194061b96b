package response

import (
	"net/http"
	"sync"

	"github.com/kbukum/fnkit/errors"
)

var (
	statusMu     sync.RWMutex
	statusByCode = map[errors.ErrorCode]int{
		errors.CodeValidation:   http.StatusBadRequest,
		errors.CodeUnauthorized: http.StatusUnauthorized,
		errors.CodeForbidden:    http.StatusForbidden,
		errors.CodeNotFound:     http.StatusNotFound,
		errors.CodeConflict:     http.StatusConflict,
		errors.CodeTimeout:      http.StatusGatewayTimeout,
		errors.CodeInternal:     http.StatusInternalServerError,
	}
)

// RegisterStatus maps an error code to an HTTP status.
func RegisterStatus(code errors.ErrorCode, status int) {
	statusMu.Lock()
	defer statusMu.Unlock()
	statusByCode[code] = status
}

// StatusFor returns the HTTP status for code, 500 for unmapped codes.
func StatusFor(code errors.ErrorCode) int {
	statusMu.RLock()
	defer statusMu.RUnlock()
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
