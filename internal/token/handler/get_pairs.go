package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type GetPairsResponse struct {
	Currency string   `json:"currency" example:"EUR"`
	Pairs    []string `json:"pairs" example:"BTC,ETH"`
}

// GetPairs godoc
// @Summary List pairs for a token
// @Description List tokens that can be swapped against the given one
// @Tags Tokens
// @Produce json
// @Param currency path string true "Token symbol"
// @Success 200 {object} GetPairsResponse
// @Failure 400 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /tokens/{currency}/pairs [get]
func (h *Handler) GetPairs(w http.ResponseWriter, r *http.Request) {
	currency := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "currency")))

	if err := h.validator.ValidateToken(currency); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pairs, err := h.service.Pairs(r.Context(), currency)
	if err != nil {
		writeServiceError(w, err, "ups, couldn't get pairs this time", logrus.Fields{"handler": "GetPairs", "currency": currency})
		return
	}
	writeJSON(w, http.StatusOK, GetPairsResponse{Currency: currency, Pairs: pairs})
}
