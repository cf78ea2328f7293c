package resp

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSONResponse сериализует data и пишет ответ с заданным статусом
func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Println("failed to write json response:", err)
	}
}
