package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// seedHandler serves POST /api/seed.
func seedHandler(svc Seeder) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.Apply(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": res.Message})
	}
}
