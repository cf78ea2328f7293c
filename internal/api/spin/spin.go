package spin

import (
	"errors"
	"net/http"
	"promo_backend/internal/converter"
	"promo_backend/internal/model"
	"promo_backend/internal/service"
	"promo_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SpinService
}

type Handler struct {
	serv service.SpinService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	state, err := h.serv.State(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinStateResponse(*state))
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.serv.Spin(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoPrizesLeft), errors.Is(err, model.ErrNoLoseSegments):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*outcome))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinStatsResponse(h.serv.Stats()))
}
