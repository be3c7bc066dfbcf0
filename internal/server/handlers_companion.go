package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moodsync/apps/backend/internal/companion"
)

// companionReply serves one task. It always answers 200 with success=true;
// backend trouble is absorbed by the gateway.
func (a *App) companionReply(task companion.Task) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := optionalJSON(c)
		fields := companion.Fields{
			Context:  toString(payload["context"]),
			TaskName: toString(payload["taskName"]),
			Message:  toString(payload["message"]),
			Mood:     toString(payload["mood"]),
			Query:    toString(payload["query"]),
		}
		reply := a.gateway.Respond(c.Request.Context(), task, fields)
		c.JSON(http.StatusOK, aiResponse{Success: true, Response: reply})
	}
}
