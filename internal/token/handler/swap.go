package handler

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"tokenswap/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type SwapRequest struct {
	TokenIn  string `json:"token_in" example:"ETH"`
	TokenOut string `json:"token_out" example:"EUR"`
	Amount   string `json:"amount" example:"1.5"`
}

type SwapResponse struct {
	OrderID string          `json:"order_id,omitempty"`
	Debit   domain.OrderLeg `json:"debit"`
	Credit  domain.OrderLeg `json:"credit"`
}

// Swap godoc
// @Summary Submit a swap
// @Description Forward a swap to the trading provider. The amount is in units of token_in.
// @Tags Swap
// @Accept json
// @Produce json
// @Param request body SwapRequest true "Swap"
// @Success 200 {object} SwapResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse "provider rejected the swap"
// @Router /swap [post]
func (h *Handler) Swap(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1024)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req SwapRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tokenIn := strings.ToUpper(strings.TrimSpace(req.TokenIn))
	tokenOut := strings.ToUpper(strings.TrimSpace(req.TokenOut))
	amount := strings.TrimSpace(req.Amount)

	if err := h.validator.ValidateSwap(tokenIn, tokenOut, amount); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	requestID := uuid.NewString()
	order, err := h.service.Swap(r.Context(), domain.SwapRequest{
		TokenIn:  tokenIn,
		TokenOut: tokenOut,
		Amount:   amount,
		IP:       clientIP(r),
	})
	if err != nil {
		writeServiceError(w, err, "swap wasn't submitted", logrus.Fields{"handler": "Swap", "request_id": requestID, "token_in": tokenIn, "token_out": tokenOut})
		return
	}

	logrus.WithFields(logrus.Fields{"request_id": requestID, "order_id": order.ID}).Debug("swap submitted")
	writeJSON(w, http.StatusOK, SwapResponse{
		OrderID: order.ID,
		Debit:   order.Debit,
		Credit:  order.Credit,
	})
}

// clientIP expects middleware.RealIP to have rewritten RemoteAddr when running behind a proxy.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
