package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "oidcreg_registrations_total",
	Help: "Number of dynamic client registration attempts by result",
}, []string{"result"})

var registrationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "oidcreg_registration_duration_seconds",
	Help:    "Time taken to handle a registration request",
	Buckets: prometheus.DefBuckets,
})

var scopesNarrowed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "oidcreg_scopes_narrowed_total",
	Help: "Number of registrations granted fewer scopes than requested",
})
