package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/movaro/transfer_offers_app/internal/apperrors"
	portssvc "github.com/movaro/transfer_offers_app/internal/core/ports/services"
	"github.com/movaro/transfer_offers_app/internal/dto"
	"github.com/movaro/transfer_offers_app/internal/middleware"
)

// offerHandler handles corridor evaluation requests.
type offerHandler struct {
	offerService portssvc.OfferSvcFacade
}

func newOfferHandler(os portssvc.OfferSvcFacade) *offerHandler {
	return &offerHandler{
		offerService: os,
	}
}

// registerOfferRoutes registers the corridor evaluation route.
func registerOfferRoutes(rg *gin.RouterGroup, offerService portssvc.OfferSvcFacade) {
	h := newOfferHandler(offerService)

	rg.GET("/transfer-rules-filtered", h.evaluateCorridor)
}

// evaluateCorridor returns the best offer per provider for a corridor, ordered
// cheapest first. Amount and source currency are optional query parameters;
// an amount without a currency is rejected.
func (h *offerHandler) evaluateCorridor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EvaluateCorridorRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for EvaluateCorridor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(
		slog.String("send_country_id", req.SendCountryID),
		slog.String("receive_country_id", req.ReceiveCountryID),
	)
	logger.Info("Received request to evaluate corridor")

	offers, fromCurrency, err := h.offerService.EvaluateCorridor(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error evaluating corridor", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNoRulesFound):
			logger.Info("No transfer rules for corridor")
			c.JSON(http.StatusNotFound, gin.H{"error": "No transfer rules found for this corridor"})
		case errors.Is(err, apperrors.ErrNoValidOffers):
			logger.Info("No valid offers for corridor request")
			c.JSON(http.StatusNotFound, gin.H{"error": "No valid offers for this request"})
		case errors.Is(err, apperrors.ErrCurrencyInactive):
			logger.Warn("Requested currency is inactive", slog.String("from_currency_id", req.FromCurrencyID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Requested currency is not active"})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Requested entity not found", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": "Requested currency not found"})
		default:
			logger.Error("Failed to evaluate corridor", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate corridor"})
		}
		return
	}

	resp := dto.CorridorOffersResponse{
		SendCountryID:    req.SendCountryID,
		ReceiveCountryID: req.ReceiveCountryID,
		Offers:           dto.ToOfferResponseSlice(offers),
	}
	if fromCurrency != nil {
		fc := dto.ToCurrencyResponse(fromCurrency)
		resp.FromCurrency = &fc
	}

	logger.Info("Corridor evaluated successfully", slog.Int("offer_count", len(offers)))
	c.JSON(http.StatusOK, resp)
}
