package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "camtour",
			Name:      "booking_created_total",
			Help:      "Count of booking requests created.",
		},
	)

	bookingStatus = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "camtour",
			Name:      "booking_status_changed_total",
			Help:      "Count of booking status changes by new status.",
		},
		[]string{"status"},
	)

	chatAnswers = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "camtour",
			Name:      "chat_answers_total",
			Help:      "Count of advisor answers by matched topic.",
		},
		[]string{"topic"},
	)

	reviewsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "camtour",
			Name:      "review_created_total",
			Help:      "Count of reviews written.",
		},
	)

	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "camtour",
			Name:      "destination_cache_lookups_total",
			Help:      "Destination cache lookups by result.",
		},
		[]string{"result"},
	)
)

// Register регистрирует метрики (идемпотентно).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingStatus, chatAnswers, reviewsCreated, cacheLookups)
	})
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingStatus(status string) {
	bookingStatus.WithLabelValues(status).Inc()
}

func IncChatAnswer(topic string) {
	chatAnswers.WithLabelValues(topic).Inc()
}

func IncReviewCreated() {
	reviewsCreated.Inc()
}

// IncCacheLookup учитывает попадание (hit=true) или промах кэша.
func IncCacheLookup(hit bool) {
	if hit {
		cacheLookups.WithLabelValues("hit").Inc()
		return
	}
	cacheLookups.WithLabelValues("miss").Inc()
}

// Serve отдает /metrics на отдельном порту до отмены ctx.
func Serve(ctx context.Context, port int, log *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("metrics server error", zap.Error(err))
	}
}
