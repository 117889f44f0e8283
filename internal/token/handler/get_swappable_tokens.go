package handler

import (
	"net/http"
)

// GetSwappableTokens godoc
// @Summary List swappable tokens
// @Description Tokens that have a provider account configured and can be submitted in a swap
// @Tags Swap
// @Produce json
// @Success 200 {object} GetTokensResponse
// @Router /swap/supported-tokens [get]
func (h *Handler) GetSwappableTokens(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, GetTokensResponse{
		Tokens: h.validator.SwappableTokens(),
	})
}
