package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/username/aktienportfolio/backend/src/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GenerateETag creates a SHA256 hash of the JSON representation of the data.
// Returns the ETag string (hex-encoded hash) and any error during JSON marshaling.
func GenerateETag(data interface{}) (string, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal data for ETag generation: %w", err)
	}
	hash := sha256.Sum256(jsonData)
	return hex.EncodeToString(hash[:]), nil
}

// WriteJSON encodes data as the response body with the given status code.
func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil && logger.L != nil {
		logger.L.Error("Error encoding JSON response", "error", err)
	}
}

// WriteJSONWithETag writes data like WriteJSON but tags it with a strong ETag and answers
// a matching If-None-Match with 304. The data is always computed by the caller.
func WriteJSONWithETag(w http.ResponseWriter, r *http.Request, data interface{}) {
	etag, err := GenerateETag(data)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to generate ETag", "error", err)
		WriteJSON(w, data, http.StatusOK)
		return
	}

	quotedETag := fmt.Sprintf("\"%s\"", etag)
	w.Header().Set("ETag", quotedETag)
	w.Header().Set("Cache-Control", "no-cache")

	for _, cETag := range strings.Split(r.Header.Get("If-None-Match"), ",") {
		if strings.TrimSpace(cETag) == quotedETag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	WriteJSON(w, data, http.StatusOK)
}

// SendJSONError is a helper function to send JSON formatted error responses.
func SendJSONError(w http.ResponseWriter, message string, statusCode int) {
	if logger.L != nil {
		logger.L.Warn("Sending JSON error to client", "message", message, "statusCode", statusCode)
	}
	WriteJSON(w, map[string]string{"error": message}, statusCode)
}
