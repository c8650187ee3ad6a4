package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// send sets headers with the given status and marshals the body in JSON.
func send(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	j, err := json.Marshal(body)
	if err != nil {
		msg := fmt.Sprintf("Can't build response: %q", err.Error())
		w.Write([]byte(fmt.Sprintf("{\"code\": 500, \"message\": \"%s\"}", msg)))
		return
	}
	w.Write(j)
}

// formatError turns a rest.Error into a serializable payload.
func formatError(err *Error) map[string]interface{} {
	payload := map[string]interface{}{
		"code":    err.Code,
		"message": err.Message,
	}
	if len(err.Issues) > 0 {
		payload["issues"] = err.Issues
	}
	return payload
}
