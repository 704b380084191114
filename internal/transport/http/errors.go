package http

import (
	"encoding/json"
	"net/http"
)

// detailResponse is the error body shape: {"detail": "..."}. The
// detail string doubles as the human-readable explanation, so domain
// error messages are written through verbatim.
type detailResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(detailResponse{Detail: detail})
	if err != nil {
		_, _ = w.Write([]byte(`{"detail":"internal error"}`))
		return
	}
	_, _ = w.Write(payload)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
