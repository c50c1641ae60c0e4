package server

import (
  "github.com/gin-gonic/gin"
  "github.com/yungbote/curator-sync/internal/handlers"
)

// NewRouter builds the ops surface. The daemon has no API proper; the router
// only exists so orchestration can probe it.
func NewRouter() *gin.Engine {
  router := gin.Default()
  router.GET("/healthcheck", handlers.HealthCheck)
  return router
}
