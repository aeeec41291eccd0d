package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type OptimizeHandler struct{}

func NewOptimizeHandler() *OptimizeHandler {
	return &OptimizeHandler{}
}

// GET /optimize
//
// Placeholder for the optimization pipeline. Until that lands this
// always reports success; a fault in a future implementation surfaces
// as the error shape below instead of a crashed request.
func (h *OptimizeHandler) Optimize(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			c.JSON(http.StatusInternalServerError, StatusResponse{
				Status:  "error",
				Message: fmt.Sprint(r),
			})
		}
	}()

	c.JSON(http.StatusOK, StatusResponse{
		Status:  "success",
		Message: "Energy optimization in progress.",
	})
}
