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

// providerHandler handles HTTP requests related to transfer providers.
type providerHandler struct {
	providerService portssvc.ProviderSvcFacade
}

func newProviderHandler(ps portssvc.ProviderSvcFacade) *providerHandler {
	return &providerHandler{
		providerService: ps,
	}
}

// registerProviderRoutes registers routes related to providers.
func registerProviderRoutes(rg *gin.RouterGroup, providerService portssvc.ProviderSvcFacade) {
	h := newProviderHandler(providerService)

	providers := rg.Group("/providers")
	{
		providers.POST("", h.createProvider)
		providers.GET("", h.listProviders)
		providers.GET("/:id", h.getProviderByID)
	}
}

func (h *providerHandler) createProvider(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProvider", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create provider", slog.String("name", req.Name))

	createdProvider, err := h.providerService.CreateProvider(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating provider", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create provider in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create provider"})
		}
		return
	}

	logger.Info("Provider created successfully", slog.String("provider_id", createdProvider.ProviderID))
	c.JSON(http.StatusCreated, dto.ToProviderResponse(createdProvider))
}

func (h *providerHandler) getProviderByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	providerID := c.Param("id")

	logger = logger.With(slog.String("provider_id", providerID))
	logger.Info("Received request to get provider by ID")

	provider, err := h.providerService.GetProviderByID(c.Request.Context(), providerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Provider not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		} else {
			logger.Error("Failed to get provider from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve provider"})
		}
		return
	}

	logger.Info("Provider retrieved successfully")
	c.JSON(http.StatusOK, dto.ToProviderResponse(provider))
}

func (h *providerHandler) listProviders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list providers")

	providers, err := h.providerService.ListProviders(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list providers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list providers"})
		return
	}

	logger.Info("Providers listed successfully", slog.Int("count", len(providers)))
	c.JSON(http.StatusOK, dto.ToProviderResponseSlice(providers))
}
