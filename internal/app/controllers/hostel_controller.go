package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelhub/hostelhub/internal/app/models"
	"github.com/hostelhub/hostelhub/internal/app/models/dto"
	"github.com/hostelhub/hostelhub/internal/app/services"
	"github.com/hostelhub/hostelhub/internal/middleware"
)

// HostelController handles hostel, room and allocation operations
type HostelController struct {
	hostelService services.HostelService
}

// NewHostelController creates a new HostelController
func NewHostelController(hostelService services.HostelService) *HostelController {
	return &HostelController{hostelService: hostelService}
}

// CreateHostel handles hostel creation
// @Summary Create hostel
// @Tags hostels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Hostel true "Hostel"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /api/hostels [post]
func (c *HostelController) CreateHostel(ctx *gin.Context) {
	var hostel models.Hostel
	if err := ctx.ShouldBindJSON(&hostel); err != nil {
		bindError(ctx, "Invalid hostel data", err)
		return
	}

	id, err := c.hostelService.CreateHostel(ctx.Request.Context(), &hostel)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.IDResponse{ID: id})
}

// CreateRoom handles room creation
// @Summary Create room
// @Description Creates a room; occupancy always starts at zero
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Room true "Room"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /api/rooms [post]
func (c *HostelController) CreateRoom(ctx *gin.Context) {
	var room models.Room
	if err := ctx.ShouldBindJSON(&room); err != nil {
		bindError(ctx, "Invalid room data", err)
		return
	}

	id, err := c.hostelService.CreateRoom(ctx.Request.Context(), &room)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.IDResponse{ID: id})
}

// AvailableRooms lists rooms with free beds
// @Summary List available rooms
// @Description Rooms where current_occupancy < capacity
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} map[string]interface{}
// @Router /api/rooms/available [get]
func (c *HostelController) AvailableRooms(ctx *gin.Context) {
	rooms, err := c.hostelService.AvailableRooms(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rooms)
}

// AllocateRoom assigns a student to a room
// @Summary Allocate room
// @Description Creates the allocation record and bumps the room occupancy counter
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.RoomAllocation true "Allocation"
// @Success 200 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /api/rooms/allocate [post]
func (c *HostelController) AllocateRoom(ctx *gin.Context) {
	var alloc models.RoomAllocation
	if err := ctx.ShouldBindJSON(&alloc); err != nil {
		bindError(ctx, "Invalid allocation data", err)
		return
	}

	id, err := c.hostelService.AllocateRoom(ctx.Request.Context(), &alloc)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.IDResponse{ID: id})
}
