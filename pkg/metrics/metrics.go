package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// 任务分析延迟（毫秒）
	AnalysisLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "task_analysis_latency_ms",
			Help:    "Task analysis latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10), // 1ms to ~1s
		},
		[]string{"kind"}, // kind: task, context
	)

	// 任务分析计数
	AnalysisCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "task_analysis_count",
			Help: "Total number of analyses performed",
		},
		[]string{"kind", "trigger"}, // trigger: api, worker
	)

	// 日程编排计数
	ScheduleBuildCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_build_count",
			Help: "Total number of day schedules built",
		},
		[]string{"status"}, // status: success, failed
	)

	// HTTP 请求延迟（秒）
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// MQ 消费延迟（毫秒）
	MQConsumeLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mq_consume_latency_ms",
			Help:    "MQ message consumption latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10), // 10ms to ~10s
		},
		[]string{"routing_key", "queue"},
	)
)

// RecordAnalysisLatency 记录分析延迟
func RecordAnalysisLatency(kind string, duration time.Duration) {
	AnalysisLatency.WithLabelValues(kind).Observe(float64(duration.Milliseconds()))
}

// IncrementAnalysis 增加分析计数
func IncrementAnalysis(kind, trigger string) {
	AnalysisCount.WithLabelValues(kind, trigger).Inc()
}

// IncrementScheduleBuild 增加日程编排计数
func IncrementScheduleBuild(status string) {
	ScheduleBuildCount.WithLabelValues(status).Inc()
}

// RecordHTTPRequestDuration 记录 HTTP 请求延迟
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordMQConsumeLatency 记录 MQ 消费延迟
func RecordMQConsumeLatency(routingKey, queue string, duration time.Duration) {
	MQConsumeLatency.WithLabelValues(routingKey, queue).Observe(float64(duration.Milliseconds()))
}
