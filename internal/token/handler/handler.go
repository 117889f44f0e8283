package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"tokenswap/internal/domain"
	"tokenswap/internal/token"

	"github.com/sirupsen/logrus"
)

type Validator interface {
	ValidateToken(symbol string) error
	ValidatePair(tokenIn, tokenOut string) error
	ValidateAmount(amount string) error
	ValidateDirection(direction string) error
	ValidateSwap(tokenIn, tokenOut, amount string) error
	SwappableTokens() []string
}

type Service interface {
	Tokens(ctx context.Context) ([]string, error)
	Pairs(ctx context.Context, currency string) ([]string, error)
	PriceInLocale(ctx context.Context, symbol string, amount string) (token.PriceView, error)
	QuoteSwap(ctx context.Context, req domain.SwapQuoteRequest) (token.QuoteView, error)
	Swap(ctx context.Context, req domain.SwapRequest) (domain.SwapOrder, error)
}

type Handler struct {
	validator Validator
	service   Service
}

func NewTokenHandler(validator Validator, service Service) *Handler {
	return &Handler{validator: validator, service: service}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// writeServiceError maps service errors to HTTP statuses; unknown errors are logged and hidden.
func writeServiceError(w http.ResponseWriter, err error, msg string, fields logrus.Fields) {
	var providerErr *domain.ProviderError
	switch {
	case errors.Is(err, domain.ErrSnapshotNotFound):
		writeError(w, http.StatusServiceUnavailable, "rates are not available yet")
	case errors.Is(err, domain.ErrPairNotFound):
		writeError(w, http.StatusNotFound, "pair not found")
	case errors.Is(err, domain.ErrTokenUnsupported):
		writeError(w, http.StatusBadRequest, "token not supported")
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidDirection):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidRate):
		logrus.WithError(err).WithFields(fields).Warn("unusable rate in snapshot")
		writeError(w, http.StatusUnprocessableEntity, "rate is not usable for this pair")
	case errors.As(err, &providerErr):
		logrus.WithError(err).WithFields(fields).Warn("swap provider rejected request")
		if providerErr.Code != "" {
			writeError(w, http.StatusBadGateway, "swap rejected by provider: "+providerErr.Code)
			return
		}
		writeError(w, http.StatusBadGateway, "swap provider is unavailable")
	default:
		logrus.WithError(err).WithFields(fields).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
	}
}
