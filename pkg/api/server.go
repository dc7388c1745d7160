// Package api provides the REST API server for pitchconv
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/koyashiro/pitchconv/pkg/converter"
	"github.com/koyashiro/pitchconv/pkg/pitch"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Pitchconv API
// @version 1.0
// @description API for converting between scientific and register-word pitch notations
// @host localhost:8080
// @BasePath /api/v1

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.POST("/convert", handleConvert)
		v1.GET("/convert/:pitch/midi", handleMIDIPreview)
		v1.GET("/formats", listFormats)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r.Run(fmt.Sprintf(":%d", port))
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pitchconv",
	})
}

// listFormats godoc
// @Summary List supported notations
// @Description Returns the supported pitch notations and conversion paths
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/v1/formats [get]
func listFormats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"formats":     []pitch.Format{pitch.FormatScientific, pitch.FormatAlternative},
		"conversions": converter.GetSupportedConversions(),
	})
}

type convertRequest struct {
	Pitch string `json:"pitch" binding:"required"`
}

// handleConvert godoc
// @Summary Convert a pitch to the other notation
// @Description Detects the notation of the submitted pitch and returns it rendered in the other one
// @Tags convert
// @Accept json
// @Produce json
// @Param request body convertRequest true "Pitch to convert"
// @Success 200 {object} converter.Result
// @Failure 400 {object} map[string]string
// @Router /api/v1/convert [post]
func handleConvert(c *gin.Context) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing pitch"})
		return
	}

	result, err := converter.ConvertWithFormat(req.Pitch)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleMIDIPreview godoc
// @Summary Download a one-note MIDI file for a pitch
// @Description Returns a Standard MIDI File holding the pitch as a single whole note
// @Tags convert
// @Produce application/octet-stream
// @Param pitch path string true "Pitch in either notation"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/convert/{pitch}/midi [get]
func handleMIDIPreview(c *gin.Context) {
	in := c.Param("pitch")

	p, err := pitch.Parse(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := converter.GenerateSMF(p.Pitch, converter.SMFOptions{})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.mid", p.Pitch.Scientific()))
	c.Data(http.StatusOK, "audio/midi", data)
}
