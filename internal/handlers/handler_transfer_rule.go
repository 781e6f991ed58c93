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

// transferRuleHandler handles HTTP requests related to transfer rules.
type transferRuleHandler struct {
	ruleService portssvc.TransferRuleSvcFacade
}

func newTransferRuleHandler(rs portssvc.TransferRuleSvcFacade) *transferRuleHandler {
	return &transferRuleHandler{
		ruleService: rs,
	}
}

// registerTransferRuleRoutes registers routes related to transfer rules.
func registerTransferRuleRoutes(rg *gin.RouterGroup, ruleService portssvc.TransferRuleSvcFacade) {
	h := newTransferRuleHandler(ruleService)

	rules := rg.Group("/transfer-rules")
	{
		rules.POST("", h.createTransferRule)
		rules.GET("/:id", h.getRuleByID)
		rules.GET("", h.listCorridorRules)
	}
}

func (h *transferRuleHandler) createTransferRule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransferRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransferRule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create transfer rule",
		slog.String("provider_id", req.ProviderID),
		slog.String("send_country_id", req.SendCountryID),
		slog.String("receive_country_id", req.ReceiveCountryID),
	)

	createdRule, err := h.ruleService.CreateTransferRule(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating transfer rule", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Referenced entity not found for transfer rule", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced provider, country, currency or document not found"})
		} else {
			logger.Error("Failed to create transfer rule in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transfer rule"})
		}
		return
	}

	logger.Info("Transfer rule created successfully", slog.String("rule_id", createdRule.RuleID))
	c.JSON(http.StatusCreated, dto.ToTransferRuleResponse(createdRule))
}

func (h *transferRuleHandler) getRuleByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ruleID := c.Param("id")

	logger = logger.With(slog.String("rule_id", ruleID))
	logger.Info("Received request to get transfer rule by ID")

	rule, err := h.ruleService.GetRuleByID(c.Request.Context(), ruleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transfer rule not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Transfer rule not found"})
		} else {
			logger.Error("Failed to get transfer rule from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transfer rule"})
		}
		return
	}

	logger.Info("Transfer rule retrieved successfully")
	c.JSON(http.StatusOK, dto.ToTransferRuleResponse(rule))
}

func (h *transferRuleHandler) listCorridorRules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sendCountryID := c.Query("send_country_id")
	receiveCountryID := c.Query("receive_country_id")
	if sendCountryID == "" || receiveCountryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "send_country_id and receive_country_id are required"})
		return
	}

	logger = logger.With(
		slog.String("send_country_id", sendCountryID),
		slog.String("receive_country_id", receiveCountryID),
	)
	logger.Info("Received request to list corridor rules")

	rules, err := h.ruleService.ListCorridorRules(c.Request.Context(), sendCountryID, receiveCountryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoRulesFound) {
			logger.Info("No transfer rules for corridor")
			c.JSON(http.StatusNotFound, gin.H{"error": "No transfer rules found for this corridor"})
			return
		}
		logger.Error("Failed to list corridor rules from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transfer rules"})
		return
	}

	logger.Info("Corridor rules listed successfully", slog.Int("count", len(rules)))
	c.JSON(http.StatusOK, dto.ToTransferRuleResponseSlice(rules))
}
