package router

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpStatusCounters = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "consulta_http_status",
			Help: "Count of http status per route.",
		},
		[]string{"route", "status"},
	)
)

// RecordHTTPStats counts responses by route template and status.
func RecordHTTPStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpStatusCounters.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
