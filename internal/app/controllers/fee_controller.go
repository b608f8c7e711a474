package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelhub/hostelhub/internal/app/models"
	"github.com/hostelhub/hostelhub/internal/app/models/dto"
	"github.com/hostelhub/hostelhub/internal/app/services"
	"github.com/hostelhub/hostelhub/internal/middleware"
)

// FeeController handles fee operations
type FeeController struct {
	feeService services.FeeService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService services.FeeService) *FeeController {
	return &FeeController{feeService: feeService}
}

// Create handles fee creation
// @Summary Create fee
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Fee true "Fee"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /api/fees [post]
func (c *FeeController) Create(ctx *gin.Context) {
	var fee models.Fee
	if err := ctx.ShouldBindJSON(&fee); err != nil {
		bindError(ctx, "Invalid fee data", err)
		return
	}

	id, err := c.feeService.Create(ctx.Request.Context(), &fee)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.IDResponse{ID: id})
}

// Pay marks a fee as paid
// @Summary Pay fee
// @Description Sets status=paid, transaction id and payment date; no reversal exists
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Fee id"
// @Param request body dto.PayFeeRequest false "Payment details"
// @Success 200 {object} dto.PaidResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Router /api/fees/{id}/pay [post]
func (c *FeeController) Pay(ctx *gin.Context) {
	var req dto.PayFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, "Invalid payment data", err)
		return
	}

	if err := c.feeService.Pay(ctx.Request.Context(), ctx.Param("id"), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PaidResponse{Paid: true})
}
