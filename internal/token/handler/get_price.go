package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type GetPriceResponse struct {
	Token    string `json:"token" example:"ETH"`
	Amount   string `json:"amount" example:"1.5"`
	Currency string `json:"currency" example:"EUR"`
	Total    string `json:"total" example:"4650.75"`
}

// GetPrice godoc
// @Summary Price in locale currency
// @Description Value an amount of a token in the locale currency
// @Tags Tokens
// @Produce json
// @Param token path string true "Token symbol"
// @Param amount query string true "Decimal amount"
// @Success 200 {object} GetPriceResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /tokens/{token}/price [get]
func (h *Handler) GetPrice(w http.ResponseWriter, r *http.Request) {
	tok := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "token")))
	amount := strings.TrimSpace(r.URL.Query().Get("amount"))

	if err := h.validator.ValidateToken(tok); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validator.ValidateAmount(amount); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.service.PriceInLocale(r.Context(), tok, amount)
	if err != nil {
		writeServiceError(w, err, "ups, couldn't get price this time", logrus.Fields{"handler": "GetPrice", "token": tok})
		return
	}
	writeJSON(w, http.StatusOK, GetPriceResponse{
		Token:    view.Token,
		Amount:   view.Amount.String(),
		Currency: view.Currency,
		Total:    view.Total.String(),
	})
}
