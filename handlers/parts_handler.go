package handlers

import (
	"net/http"

	"github.com/kuniyuki/beybattle-server/parts"
)

// PartsHandler serves the static part catalog and the quick-entry parser.
type PartsHandler struct{}

func NewPartsHandler() *PartsHandler {
	return &PartsHandler{}
}

// CatalogHandler handles GET /parts
func (h *PartsHandler) CatalogHandler(w http.ResponseWriter, r *http.Request) {
	catalog := jsonResponse{
		"blades":           parts.Blades,
		"ratchets":         parts.RatchetsByCode(),
		"bits":             parts.Bits,
		"cx_lock_chips":    parts.CxLockChips,
		"cx_main_blades":   parts.CxMainBlades,
		"cx_assist_blades": parts.CxAssistBlades,
	}
	if err := writeJSON(w, http.StatusOK, catalog, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// QuickParseHandler handles POST /parts/quick-parse
func (h *PartsHandler) QuickParseHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Text string `json:"text"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	cfg, ok := parts.ParseQuick(input.Text, nil)
	response := jsonResponse{"matched": ok}
	if ok {
		response["bey"] = cfg
		response["label"] = parts.FormatBey(cfg)
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
