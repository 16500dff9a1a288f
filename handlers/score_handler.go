package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kuniyuki/beybattle-server/services"
)

type ScoreHandler struct {
	scoreService services.ScoreService
}

func NewScoreHandler(ss services.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreService: ss}
}

// StateHandler handles GET /events/{eventID}/battle
func (h *ScoreHandler) StateHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	state, err := h.scoreService.State(r.Context(), eventID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"battle": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// LastLoadoutHandler handles GET /entries/{entryID}/last-loadout
func (h *ScoreHandler) LastLoadoutHandler(w http.ResponseWriter, r *http.Request) {
	entryID, err := getIDFromURL(r, "entryID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	loadout, err := h.scoreService.LastLoadout(r.Context(), entryID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"loadout": loadout}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// StartHandler handles POST /events/{eventID}/battle/start
func (h *ScoreHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.StartBattleInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	state, err := h.scoreService.StartBattle(r.Context(), eventID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"battle": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// FinishHandler handles POST /events/{eventID}/battle/finish
func (h *ScoreHandler) FinishHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.RecordFinishInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	state, err := h.scoreService.RecordFinish(r.Context(), eventID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"battle": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AdvanceHandler handles POST /events/{eventID}/battle/advance
func (h *ScoreHandler) AdvanceHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	state, err := h.scoreService.AdvanceBattle(r.Context(), eventID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"battle": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResetHandler handles POST /events/{eventID}/battle/reset
func (h *ScoreHandler) ResetHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	state, err := h.scoreService.ResetBattle(r.Context(), eventID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"battle": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ReopenSlotHandler handles DELETE /events/{eventID}/battle/winners/{slotKey}
func (h *ScoreHandler) ReopenSlotHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	slotKey := chi.URLParam(r, "slotKey")
	if slotKey == "" {
		badRequestResponse(w, r, errors.New("invalid slotKey parameter"))
		return
	}

	state, err := h.scoreService.ReopenSlot(r.Context(), eventID, slotKey)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"battle": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResetBracketHandler handles DELETE /events/{eventID}/battle/winners
func (h *ScoreHandler) ResetBracketHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	state, err := h.scoreService.ResetBracket(r.Context(), eventID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"battle": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// FinalizeHandler handles POST /events/{eventID}/finalize
func (h *ScoreHandler) FinalizeHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := getIDFromURL(r, "eventID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	event, err := h.scoreService.Finalize(r.Context(), eventID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"event": event}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
