package shuffle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dto "promo_backend/internal/api/dto/shuffle"
	"promo_backend/internal/model"
)

type fakeService struct {
	firstPickErr error
	state        *model.ShuffleState
}

func (f *fakeService) State(_ context.Context, _ string) (*model.ShuffleState, error) {
	return f.state, nil
}

func (f *fakeService) FirstPick(_ context.Context, _ string, _ int) (*model.FirstPickResult, error) {
	if f.firstPickErr != nil {
		return nil, f.firstPickErr
	}
	return &model.FirstPickResult{PrizeID: "1", Label: "Prize 1"}, nil
}

func (f *fakeService) SecondPick(_ context.Context, _ string, _ int) (*model.ShuffleOutcome, error) {
	return nil, model.ErrRoundNotStarted
}

func (f *fakeService) Stats() model.PlayStats {
	return model.PlayStats{}
}

func TestFirstPickHandler(t *testing.T) {
	t.Run("missing device header", func(t *testing.T) {
		h := NewHandler(HandlerDeps{Serv: &fakeService{}})
		r := httptest.NewRequest(http.MethodPost, "/shuffle/first-pick", strings.NewReader(`{"slot":0}`))
		w := httptest.NewRecorder()

		h.FirstPick(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		h := NewHandler(HandlerDeps{Serv: &fakeService{}})
		r := httptest.NewRequest(http.MethodPost, "/shuffle/first-pick", strings.NewReader(`{"slot":0}`))
		r.Header.Set("X-Device-ID", "dev-1")
		w := httptest.NewRecorder()

		h.FirstPick(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body dto.FirstPickResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if body.PrizeID != "1" || body.Label != "Prize 1" {
			t.Errorf("unexpected body: %+v", body)
		}
	})

	t.Run("depleted catalog maps to 409", func(t *testing.T) {
		h := NewHandler(HandlerDeps{Serv: &fakeService{firstPickErr: model.ErrNoPrizesLeft}})
		r := httptest.NewRequest(http.MethodPost, "/shuffle/first-pick", strings.NewReader(`{"slot":0}`))
		r.Header.Set("X-Device-ID", "dev-1")
		w := httptest.NewRecorder()

		h.FirstPick(w, r)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("round in progress maps to 400", func(t *testing.T) {
		h := NewHandler(HandlerDeps{Serv: &fakeService{firstPickErr: model.ErrRoundInProgress}})
		r := httptest.NewRequest(http.MethodPost, "/shuffle/first-pick", strings.NewReader(`{"slot":0}`))
		r.Header.Set("X-Device-ID", "dev-1")
		w := httptest.NewRecorder()

		h.FirstPick(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestStateHandler(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &fakeService{state: &model.ShuffleState{
		Prizes:   []model.Prize{{ID: "1", Name: "Prize 1", Amount: 2, IsActive: true}},
		Depleted: false,
		Phase:    model.RoundIdle,
	}}})
	r := httptest.NewRequest(http.MethodGet, "/shuffle/state", nil)
	r.Header.Set("X-Device-ID", "dev-1")
	w := httptest.NewRecorder()

	h.State(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body dto.StateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.Phase != string(model.RoundIdle) || len(body.Prizes) != 1 {
		t.Errorf("unexpected body: %+v", body)
	}
}
