package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type GetTokensResponse struct {
	Tokens []string `json:"tokens" example:"BTC,ETH,EUR,USDC"`
}

// GetTokens godoc
// @Summary List tokens
// @Description List every token and quote currency present in the latest rate snapshot
// @Tags Tokens
// @Produce json
// @Success 200 {object} GetTokensResponse
// @Failure 503 {object} errorResponse "no snapshot stored yet"
// @Failure 500 {object} errorResponse
// @Router /tokens [get]
func (h *Handler) GetTokens(w http.ResponseWriter, r *http.Request) {
	tokens, err := h.service.Tokens(r.Context())
	if err != nil {
		writeServiceError(w, err, "ups, couldn't list tokens this time", logrus.Fields{"handler": "GetTokens"})
		return
	}
	writeJSON(w, http.StatusOK, GetTokensResponse{Tokens: tokens})
}
