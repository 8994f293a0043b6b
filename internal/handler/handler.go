package handler

import (
	"coin-purchase/internal/model"
	"coin-purchase/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	purchaseService service.PurchaseService
	logger          zerolog.Logger
}

func NewHandler(purchaseService service.PurchaseService, logger zerolog.Logger) *Handler {
	return &Handler{
		purchaseService: purchaseService,
		logger:          logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(h.logger),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")

	v1.GET("/packages", h.ListPackages)

	purchases := v1.Group("/purchases")
	purchases.POST("", h.OpenPurchase)
	purchases.GET("/:id", h.GetPurchase)
	purchases.PUT("/:id/selection", h.SelectPackage)
	purchases.DELETE("/:id/selection", h.ClearSelection)
	purchases.POST("/:id/authorization", h.AuthorizePurchase)
	purchases.POST("/:id/confirmation", h.ConfirmPayment)
	purchases.POST("/:id/finalization", h.FinalizePurchase)
	purchases.DELETE("/:id", h.ClosePurchase)

	return router
}

// handleError maps service errors to a status and code. The dialogue
// snapshot is attached when the dialogue exists so the client can re-render.
func (h *Handler) handleError(c *gin.Context, err error, snap model.Snapshot) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrDialogueNotFound):
		status = http.StatusNotFound
		code = "PURCHASE_NOT_FOUND"
	case errors.Is(err, model.ErrPackageNotFound):
		status = http.StatusNotFound
		code = "PACKAGE_NOT_FOUND"
	case errors.Is(err, model.ErrInvalidBuyer):
		status = http.StatusBadRequest
		code = "INVALID_BUYER"
	case errors.Is(err, model.ErrCardIncomplete):
		status = http.StatusBadRequest
		code = "CARD_INCOMPLETE"
	case errors.Is(err, model.ErrNoSelection):
		status = http.StatusConflict
		code = "NO_SELECTION"
	case errors.Is(err, model.ErrNotReady):
		status = http.StatusConflict
		code = "NOT_READY"
	case errors.Is(err, model.ErrSubmitInFlight):
		status = http.StatusConflict
		code = "SUBMIT_IN_FLIGHT"
	case errors.Is(err, model.ErrFinalizeInFlight):
		status = http.StatusConflict
		code = "FINALIZE_IN_FLIGHT"
	case errors.Is(err, model.ErrAlreadySucceeded):
		status = http.StatusConflict
		code = "ALREADY_SUCCEEDED"
		resp.Details = "The payment was captured; finalize the purchase instead of paying again"
	case errors.Is(err, model.ErrNothingToFinalize):
		status = http.StatusConflict
		code = "NOTHING_TO_FINALIZE"
	case errors.Is(err, model.ErrDialogueClosed):
		status = http.StatusConflict
		code = "PURCHASE_CLOSED"
	case errors.Is(err, model.ErrAttemptAbandoned):
		status = http.StatusConflict
		code = "ATTEMPT_ABANDONED"
	case errors.Is(err, model.ErrGatewayUnavailable):
		status = http.StatusServiceUnavailable
		code = "GATEWAY_UNAVAILABLE"
	case errors.Is(err, model.ErrAuthorizationFailed):
		status = http.StatusBadGateway
		code = string(model.CodeAuthorizationFailed)
	case errors.Is(err, model.ErrGatewayDeclined):
		status = http.StatusPaymentRequired
		code = string(model.CodeGatewayDeclined)
	case errors.Is(err, model.ErrGatewayAmbiguousStatus):
		status = http.StatusPaymentRequired
		code = string(model.CodeGatewayAmbiguousStatus)
	case errors.Is(err, model.ErrGatewayUnreachable):
		status = http.StatusBadGateway
		code = string(model.CodeGatewayUnreachable)
	case errors.Is(err, model.ErrFinalizeFailed):
		status = http.StatusBadGateway
		code = string(model.CodeCreditFailed)
		resp.Details = "Retry finalization; the card will not be charged again"
	}
	resp.Code = code

	if snap.ID != "" {
		resp.Purchase = &snap
	}

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
	}

	c.JSON(status, resp)
}
