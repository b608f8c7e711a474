package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/hostelhub/hostelhub/internal/store"
)

// HealthController reports service and store status
type HealthController struct {
	store  store.Store
	dbName string
}

// NewHealthController creates a new HealthController
func NewHealthController(st store.Store, dbName string) *HealthController {
	return &HealthController{store: st, dbName: dbName}
}

// Root confirms the API is running
// @Summary Root
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (c *HealthController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Hostel Management API running"})
}

// Status reports backend and database health. Probe failures degrade
// to a descriptive status string; this endpoint never fails the
// request.
// @Summary Diagnostic status
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /test [get]
func (c *HealthController) Status(ctx *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"database_name":     nil,
		"connection_status": "not connected",
		"collections":       []string{},
	}
	if os.Getenv("MONGO_URI") != "" {
		response["database_url"] = "set"
	}

	if err := c.store.Ping(ctx.Request.Context()); err != nil {
		response["database"] = "error: " + err.Error()
		ctx.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "connected"
	response["connection_status"] = "connected"
	response["database_name"] = c.dbName

	if names, err := c.store.CollectionNames(ctx.Request.Context()); err == nil {
		response["collections"] = names
	}

	ctx.JSON(http.StatusOK, response)
}
