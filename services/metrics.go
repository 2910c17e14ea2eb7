package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nutriscan_scans_total",
		Help: "Barcode scans processed, partitioned by lookup outcome.",
	}, []string{"outcome"})

	feedClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nutriscan_feed_clients",
		Help: "Currently connected live-feed websocket clients.",
	})
)
