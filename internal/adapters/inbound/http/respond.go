package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case BADREQUEST:
		statusCode = http.StatusBadRequest
	case UNAUTHORIZED:
		statusCode = http.StatusUnauthorized
	case FORBIDDEN:
		statusCode = http.StatusForbidden
	case NOTFOUND:
		statusCode = http.StatusNotFound
	case CONFLICT:
		statusCode = http.StatusConflict
	}
	respondJSON(w, statusCode, err)
}

func newErrorResp(code ErrorCode, message string) ErrorResp {
	return ErrorResp{Error: Error{Code: code, Message: message}}
}

// decodeJSON reads the request body into v and answers 400 when it is malformed.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, newErrorResp(BADREQUEST, fmt.Sprintf("invalid request body: %v", err)))
		return false
	}
	return true
}
