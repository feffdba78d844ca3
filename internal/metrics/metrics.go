package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var ClassroomTotalRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "classroom_service_requests_total",
	Help: "Total number of requests to Classroom-Service",
}, []string{"path"})
var ClassroomRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "classroom_service_duration_seconds",
	Help:    "Histogram for the request duration in seconds in Classroom-Service",
	Buckets: []float64{0.1, 0.5, 1, 2, 5},
}, []string{"handler"})
var ClassroomErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "classroom_service_errors_total",
	Help: "Total number of errors encountered by the Classroom-Service",
}, []string{"error_type"})
var ClassroomTotalSuccessfulRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "classroom_service_successful_requests_total",
	Help: "Total number of successful requests to Classroom-Service",
}, []string{"handler"})
var ClassroomRateLimitExceededTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "classroom_service_rate_limit_exceeded_total",
	Help: "Total number of requests rejected by the rate limiter",
}, []string{"path"})
var ClassroomMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "classroom_service_memory_usage_bytes",
	Help: "Current memory usage in bytes",
})
var ClassroomDBQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "classroom_service_db_query_duration_seconds",
	Help:    "Histogram for the query duration in seconds to the database",
	Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1},
}, []string{"query_type"})
var ClassroomDBQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "classroom_service_db_queries_total",
	Help: "Total number of queries executed on the database",
}, []string{"query_type"})
var ClassroomDBErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "classroom_service_db_errors_total",
	Help: "Total number of errors encountered when interacting with the database",
}, []string{"error_type", "query_type"})
var ClassroomCacheQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "classroom_service_cache_query_duration_seconds",
	Help:    "Histogram for the query duration in seconds to the cache",
	Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1},
}, []string{"query_type"})
var ClassroomCacheQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "classroom_service_cache_queries_total",
	Help: "Total number of queries executed on the cache",
}, []string{"query_type"})
var ClassroomCacheErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "classroom_service_cache_errors_total",
	Help: "Total number of errors encountered when interacting with the cache",
}, []string{"query_type"})
var ClassroomBookingConflictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "classroom_service_booking_conflicts_total",
	Help: "Total number of bookings rejected because the instructor was not available",
}, []string{"source"})
var ClassroomNotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "classroom_service_notifications_total",
	Help: "Total number of session notifications by outcome",
}, []string{"event", "outcome"})
var ClassroomKafkaProducerMessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "classroom_service_kafka_producer_messages_sent_total",
	Help: "Total number of messages sent to Kafka by Classroom-Service",
}, []string{"topics"})
var ClassroomKafkaProducerErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "classroom_service_kafka_producer_send_errors_total",
	Help: "Total number of errors encountered while sending messages to Kafka by Classroom-Service",
}, []string{"topics"})
var ClassroomKafkaProducerBufferSize = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "classroom_service_kafka_producer_queue_size",
	Help: "Current size of the Kafka producer message queue in Classroom-Service",
})

var stop = make(chan struct{})

func Start() {
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				var memStats runtime.MemStats
				runtime.ReadMemStats(&memStats)
				ClassroomMemoryUsage.Set(float64(memStats.Alloc))
			case <-stop:
				return
			}
		}
	}()
}
func Stop(logger *zap.Logger) {
	close(stop)
	logger.Debug("Successful close Metrics-Goroutine")
}

func DBMetrics(place string, start time.Time) {
	ClassroomDBQueriesTotal.WithLabelValues(place).Inc()
	ClassroomDBQueryDuration.WithLabelValues(place).Observe(time.Since(start).Seconds())
}
func CacheMetrics(place string, start time.Time) {
	ClassroomCacheQueriesTotal.WithLabelValues(place).Inc()
	ClassroomCacheQueryDuration.WithLabelValues(place).Observe(time.Since(start).Seconds())
}
