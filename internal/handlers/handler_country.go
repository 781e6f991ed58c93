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

// countryHandler handles HTTP requests related to countries.
type countryHandler struct {
	countryService portssvc.CountrySvcFacade
}

func newCountryHandler(cs portssvc.CountrySvcFacade) *countryHandler {
	return &countryHandler{
		countryService: cs,
	}
}

// registerCountryRoutes registers routes related to countries.
func registerCountryRoutes(rg *gin.RouterGroup, countryService portssvc.CountrySvcFacade) {
	h := newCountryHandler(countryService)

	countries := rg.Group("/countries")
	{
		countries.POST("", h.createCountry)
		countries.GET("", h.listCountries)
		countries.GET("/:id", h.getCountryByID)
	}
}

func (h *countryHandler) createCountry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCountry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create country", slog.String("name", req.Name))

	createdCountry, err := h.countryService.CreateCountry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating country", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Referenced currency not found", slog.String("currency_id", req.LocalCurrencyID))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Local currency not found"})
		} else {
			logger.Error("Failed to create country in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create country"})
		}
		return
	}

	logger.Info("Country created successfully", slog.String("country_id", createdCountry.CountryID))
	c.JSON(http.StatusCreated, dto.ToCountryResponse(createdCountry))
}

func (h *countryHandler) getCountryByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	countryID := c.Param("id")

	logger = logger.With(slog.String("country_id", countryID))
	logger.Info("Received request to get country by ID")

	country, err := h.countryService.GetCountryByID(c.Request.Context(), countryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Country not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		} else {
			logger.Error("Failed to get country from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve country"})
		}
		return
	}

	logger.Info("Country retrieved successfully")
	c.JSON(http.StatusOK, dto.ToCountryResponse(country))
}

func (h *countryHandler) listCountries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list countries")

	countries, err := h.countryService.ListCountries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list countries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list countries"})
		return
	}

	logger.Info("Countries listed successfully", slog.Int("count", len(countries)))
	c.JSON(http.StatusOK, dto.ToCountryResponseSlice(countries))
}
