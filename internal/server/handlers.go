package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	FullName string          `json:"fullName"`
	Email    string          `json:"email"`
	Age      json.RawMessage `json:"age"`
	Gender   string          `json:"gender"`
	Password string          `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type aiResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}

func mustJSON(c *gin.Context, payload any) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// optionalJSON decodes a loose JSON object. A missing or malformed body
// yields an empty map.
func optionalJSON(c *gin.Context) map[string]any {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil || payload == nil {
		return map[string]any{}
	}
	return payload
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}
