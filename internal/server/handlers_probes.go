package server

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

func (a *App) health(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(isoMillis),
		"uptime":    time.Since(a.startedAt).Seconds(),
		"memory": gin.H{
			"rss":       mem.Sys,
			"heapTotal": mem.HeapSys,
			"heapUsed":  mem.HeapAlloc,
			"external":  mem.StackSys,
		},
		"version": a.cfg.AppVersion,
	})
}

func (a *App) liveness(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (a *App) readiness(c *gin.Context) {
	if !a.cfg.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "Not Ready",
			"reason": "GEMINI_API_KEY not configured",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Ready"})
}
