package handler

import (
	"coin-purchase/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListPackages
// @Summary List coin packages
// @Description Returns the purchasable coin packages in display order
// @Tags packages
// @Produce json
// @Success 200 {object} model.PackageListResponse
// @Router /packages [get]
func (h *Handler) ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, model.PackageListResponse{
		Packages: h.purchaseService.ListPackages(c.Request.Context()),
	})
}

// OpenPurchase
// @Summary Open a purchase dialogue
// @Description Opens a purchase dialogue for a signed-in buyer
// @Tags purchases
// @Accept json
// @Produce json
// @Param buyer body model.BuyerIdentity true "Buyer identity"
// @Success 201 {object} model.Snapshot
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /purchases [post]
func (h *Handler) OpenPurchase(c *gin.Context) {
	var buyer model.BuyerIdentity
	if err := c.ShouldBindJSON(&buyer); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	snap, err := h.purchaseService.Open(c.Request.Context(), buyer)
	if err != nil {
		h.handleError(c, err, snap)
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// GetPurchase
// @Summary Get a purchase dialogue
// @Description Returns the current state of a purchase dialogue
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} model.Snapshot
// @Failure 404 {object} model.ErrorResponse "Purchase not found"
// @Router /purchases/{id} [get]
func (h *Handler) GetPurchase(c *gin.Context) {
	snap, err := h.purchaseService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, snap)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// SelectPackage
// @Summary Select a coin package
// @Description Selects a package and requests its payment authorization from the backend
// @Tags purchases
// @Accept json
// @Produce json
// @Param id path string true "Purchase ID"
// @Param selection body model.SelectPackageRequest true "Package selection"
// @Success 200 {object} model.Snapshot
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Purchase or package not found"
// @Failure 409 {object} model.ErrorResponse "Conflict"
// @Failure 502 {object} model.ErrorResponse "Authorization failed"
// @Router /purchases/{id}/selection [put]
func (h *Handler) SelectPackage(c *gin.Context) {
	var req model.SelectPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	snap, err := h.purchaseService.Select(c.Request.Context(), c.Param("id"), req.PackageID)
	if err != nil {
		h.handleError(c, err, snap)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ClearSelection
// @Summary Clear the package selection
// @Description Drops the selected package and any authorization held for it
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} model.Snapshot
// @Failure 404 {object} model.ErrorResponse "Purchase not found"
// @Router /purchases/{id}/selection [delete]
func (h *Handler) ClearSelection(c *gin.Context) {
	snap, err := h.purchaseService.Clear(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, snap)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// AuthorizePurchase
// @Summary Request payment authorization
// @Description Retries the authorization request for the selected package
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} model.Snapshot
// @Failure 404 {object} model.ErrorResponse "Purchase not found"
// @Failure 409 {object} model.ErrorResponse "Conflict"
// @Failure 502 {object} model.ErrorResponse "Authorization failed"
// @Router /purchases/{id}/authorization [post]
func (h *Handler) AuthorizePurchase(c *gin.Context) {
	snap, err := h.purchaseService.Authorize(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, snap)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ConfirmPayment
// @Summary Confirm the card payment
// @Description Confirms the card payment with the gateway and credits the coins on success
// @Tags purchases
// @Accept json
// @Produce json
// @Param id path string true "Purchase ID"
// @Param card body model.CardInput true "Tokenized card"
// @Success 200 {object} model.Snapshot
// @Failure 400 {object} model.ErrorResponse "Card incomplete"
// @Failure 402 {object} model.ErrorResponse "Payment declined or not completed"
// @Failure 404 {object} model.ErrorResponse "Purchase not found"
// @Failure 409 {object} model.ErrorResponse "Conflict"
// @Failure 502 {object} model.ErrorResponse "Gateway unreachable or credit failed"
// @Router /purchases/{id}/confirmation [post]
func (h *Handler) ConfirmPayment(c *gin.Context) {
	var card model.CardInput
	if err := c.ShouldBindJSON(&card); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	snap, err := h.purchaseService.Submit(c.Request.Context(), c.Param("id"), card)
	if err != nil {
		h.handleError(c, err, snap)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// FinalizePurchase
// @Summary Finalize a paid purchase
// @Description Retries crediting the coins for a captured payment without charging again
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} model.Snapshot
// @Failure 404 {object} model.ErrorResponse "Purchase not found"
// @Failure 409 {object} model.ErrorResponse "Nothing to finalize"
// @Failure 502 {object} model.ErrorResponse "Credit failed"
// @Router /purchases/{id}/finalization [post]
func (h *Handler) FinalizePurchase(c *gin.Context) {
	snap, err := h.purchaseService.Finalize(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, snap)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ClosePurchase
// @Summary Close a purchase dialogue
// @Description Closes the dialogue and discards any pending authorization
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} model.Snapshot
// @Failure 404 {object} model.ErrorResponse "Purchase not found"
// @Router /purchases/{id} [delete]
func (h *Handler) ClosePurchase(c *gin.Context) {
	snap, err := h.purchaseService.Close(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, snap)
		return
	}
	c.JSON(http.StatusOK, snap)
}
