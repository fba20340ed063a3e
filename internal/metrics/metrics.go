package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	UsersRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total successful registrations",
		},
	)

	BookOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "book_operations_total",
			Help: "Total successful book operations",
		},
		[]string{"op"}, // list|create|update|delete
	)

	GoogleBooksRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "googlebooks_requests_total",
			Help: "Total Google Books proxy calls",
		},
		[]string{"outcome"}, // ok|error
	)
)

var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(UsersRegistered)
	prometheus.MustRegister(BookOpsTotal)
	prometheus.MustRegister(GoogleBooksRequests)
}
