package shuffle

import (
	"errors"
	"net/http"
	dto "promo_backend/internal/api/dto/shuffle"
	"promo_backend/internal/converter"
	"promo_backend/internal/model"
	"promo_backend/internal/service"
	"promo_backend/pkg/req"
	"promo_backend/pkg/resp"
)

// Заголовок с идентификатором устройства: раунд из двух крышек
// принадлежит одному экрану
const deviceIDHeader = "X-Device-ID"

type HandlerDeps struct {
	Serv service.ShuffleService
}

type Handler struct {
	serv service.ShuffleService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceID(w, r)
	if !ok {
		return
	}

	state, err := h.serv.State(r.Context(), deviceID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToShuffleStateResponse(*state))
}

func (h *Handler) FirstPick(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceID(w, r)
	if !ok {
		return
	}

	payload, err := req.Decode[dto.PickRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.FirstPick(r.Context(), deviceID, payload.Slot)
	if err != nil {
		writeErr(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToFirstPickResponse(*result))
}

func (h *Handler) SecondPick(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := deviceID(w, r)
	if !ok {
		return
	}

	payload, err := req.Decode[dto.PickRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	outcome, err := h.serv.SecondPick(r.Context(), deviceID, payload.Slot)
	if err != nil {
		writeErr(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSecondPickResponse(*outcome))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToShuffleStatsResponse(h.serv.Stats()))
}

func deviceID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.Header.Get(deviceIDHeader)
	if id == "" {
		http.Error(w, "missing "+deviceIDHeader+" header", http.StatusBadRequest)
		return "", false
	}
	return id, true
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNoPrizesLeft):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, model.ErrRoundNotStarted),
		errors.Is(err, model.ErrRoundInProgress),
		errors.Is(err, model.ErrSameSlot):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
