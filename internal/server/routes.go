package server

import (
	"net/http"
	"time"

	"github.com/danmuck/bridgectl/internal/auth"
	"github.com/danmuck/bridgectl/internal/console"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const version = "0.1.0"

type commandRequest struct {
	Line string `json:"line"`
}

func (a *Admin) registerRoutes() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(a.appeared).String(),
			"service": a.name,
			"version": version,
		})
	})

	a.router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ready":   true,
			"service": a.name,
			"version": version,
		})
	})

	a.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	a.router.POST("/commands", a.requireToken(), a.handleCommand)
}

// requireToken guards hardware-driving routes when an admin token is set.
func (a *Admin) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.validator == nil {
			c.Next()
			return
		}
		if err := auth.Authorize(a.validator, c.GetHeader("Authorization")); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// handleCommand runs one command line through the same console grammar as
// the serial link.
func (a *Admin) handleCommand(c *gin.Context) {
	var body commandRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	buf, err := console.LoadLine(body.Line)
	if err != nil {
		a.service.Reject(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": console.Reason(err)})
		return
	}
	req, menu, err := console.Decode(&buf)
	if err != nil {
		a.service.Reject(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": console.Reason(err)})
		return
	}
	if menu {
		a.service.MenuShown()
		c.JSON(http.StatusOK, gin.H{"menu": console.Menu})
		return
	}

	valid, res, err := a.service.Execute(c.Request.Context(), req)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if c.Request.Context().Err() != nil {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"request": valid,
		"result":  res,
	})
}
