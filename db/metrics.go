package db

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricConsultas = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "consulta_requerimentos_total",
			Help: "Consultas de requerimentos executadas, por resultado.",
		},
		[]string{"resultado"},
	)

	metricConsultaDuracao = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "consulta_requerimentos_duracao_segundos",
			Help:    "Tempo das consultas de requerimentos no banco.",
			Buckets: prometheus.DefBuckets,
		},
	)
)
