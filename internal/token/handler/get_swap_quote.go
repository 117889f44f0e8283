package handler

import (
	"net/http"
	"strings"

	"tokenswap/internal/domain"

	"github.com/sirupsen/logrus"
)

type GetSwapQuoteResponse struct {
	TokenIn   string `json:"token_in" example:"EUR"`
	TokenOut  string `json:"token_out" example:"ETH"`
	Amount    string `json:"amount" example:"100"`
	Direction string `json:"direction" example:"EXACT_INPUT"`
	Quote     string `json:"quote" example:"0.03225806"`
}

// GetSwapQuote godoc
// @Summary Quote a swap
// @Description Compute the counter-amount of a swap from the latest rates. With EXACT_INPUT the amount is what the user sells, with EXACT_OUTPUT what the user buys.
// @Tags Swap
// @Produce json
// @Param token_in query string true "Token sold"
// @Param token_out query string true "Token bought"
// @Param amount query string true "Decimal amount"
// @Param direction query string true "EXACT_INPUT or EXACT_OUTPUT"
// @Success 200 {object} GetSwapQuoteResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /swap/quote [get]
func (h *Handler) GetSwapQuote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tokenIn := strings.ToUpper(strings.TrimSpace(q.Get("token_in")))
	tokenOut := strings.ToUpper(strings.TrimSpace(q.Get("token_out")))
	amount := strings.TrimSpace(q.Get("amount"))
	direction := strings.ToUpper(strings.TrimSpace(q.Get("direction")))

	if err := h.validator.ValidatePair(tokenIn, tokenOut); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validator.ValidateAmount(amount); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validator.ValidateDirection(direction); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.service.QuoteSwap(r.Context(), domain.SwapQuoteRequest{
		TokenIn:   tokenIn,
		TokenOut:  tokenOut,
		Amount:    amount,
		Direction: domain.Direction(direction),
	})
	if err != nil {
		writeServiceError(w, err, "ups, couldn't quote swap this time", logrus.Fields{"handler": "GetSwapQuote", "token_in": tokenIn, "token_out": tokenOut})
		return
	}
	writeJSON(w, http.StatusOK, GetSwapQuoteResponse{
		TokenIn:   view.TokenIn,
		TokenOut:  view.TokenOut,
		Amount:    view.Amount.String(),
		Direction: string(view.Direction),
		Quote:     view.Quote.String(),
	})
}
