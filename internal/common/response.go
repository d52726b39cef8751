package common

import (
	"encoding/json"
	"net/http"
	"time"
)

// Envelope is the response wrapper shared with the campus API, so clients
// consume one shape whether a payload originated here or upstream.
type Envelope struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp,omitempty"`
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Envelope{Success: false, Message: message, Timestamp: now()})
}

// RespondWithFieldErrors reports per-field validation failures without ever
// having issued a network call.
func RespondWithFieldErrors(w http.ResponseWriter, fields map[string]string) {
	RespondWithJSON(w, http.StatusBadRequest, Envelope{
		Success:   false,
		Message:   ErrValidation.Error(),
		Data:      map[string]interface{}{"errors": fields},
		Timestamp: now(),
	})
}

func RespondWithData(w http.ResponseWriter, code int, data interface{}) {
	RespondWithJSON(w, code, Envelope{Success: true, Data: data, Timestamp: now()})
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success": false, "message": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
