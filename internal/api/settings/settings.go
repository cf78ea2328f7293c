package settings

import (
	"log"
	"net/http"
	dto "promo_backend/internal/api/dto/settings"
	"promo_backend/internal/converter"
	"promo_backend/internal/middleware"
	"promo_backend/internal/service"
	"promo_backend/pkg/req"
	"promo_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SettingsService
}

type Handler struct {
	serv service.SettingsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Get отдает текущую конфигурацию (или дефолты если сохраненной нет)
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.serv.Get(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettingsResponse(*settings))
}

// Update заменяет конфигурацию целиком. Только для администраторов
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.Settings](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.serv.Update(r.Context(), converter.ToSettingsModel(payload))
	if err != nil {
		log.Println("Settings update error:", err)
		http.Error(w, "settings update failed", http.StatusInternalServerError)
		return
	}

	if adminID, ok := middleware.AdminIDFromContext(r.Context()); ok {
		log.Printf("settings updated by admin %d", adminID)
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettingsResponse(*updated))
}
