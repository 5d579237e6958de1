// Package promstats is a reference stats.Hook collector built on
// github.com/prometheus/client_golang/prometheus. It is wired into
// internal/channel purely through the stats.Hook interface; the core
// codec packages never import prometheus.
package promstats

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danmuck/chanwire/internal/stats"
)

// Collector reports channel activity as Prometheus metrics.
type Collector struct {
	channel string

	framesSent     prometheus.Counter
	framesReceived prometheus.Counter
	bytesSent      prometheus.Counter
	bytesReceived  prometheus.Counter
	packetsSent    prometheus.Counter
	packetsRecv    prometheus.Counter
	poisonedTotal  prometheus.Counter
}

var registerOnce sync.Once

var (
	framesSentVec     *prometheus.CounterVec
	framesReceivedVec *prometheus.CounterVec
	bytesSentVec      *prometheus.CounterVec
	bytesReceivedVec  *prometheus.CounterVec
	packetsSentVec    *prometheus.CounterVec
	packetsRecvVec    *prometheus.CounterVec
	poisonedVec       *prometheus.CounterVec
)

func register() {
	registerOnce.Do(func() {
		framesSentVec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chanwire",
			Name:      "frames_sent_total",
			Help:      "Total frames successfully sent.",
		}, []string{"channel"})
		framesReceivedVec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chanwire",
			Name:      "frames_received_total",
			Help:      "Total frames successfully received.",
		}, []string{"channel"})
		bytesSentVec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chanwire",
			Name:      "bytes_sent_total",
			Help:      "Total payload bytes sent.",
		}, []string{"channel"})
		bytesReceivedVec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chanwire",
			Name:      "bytes_received_total",
			Help:      "Total payload bytes received.",
		}, []string{"channel"})
		packetsSentVec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chanwire",
			Name:      "packets_sent_total",
			Help:      "Total packets written to the wire.",
		}, []string{"channel"})
		packetsRecvVec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chanwire",
			Name:      "packets_received_total",
			Help:      "Total packets read from the wire.",
		}, []string{"channel"})
		poisonedVec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chanwire",
			Name:      "poisoned_total",
			Help:      "Total times a direction latched a fatal error.",
		}, []string{"channel"})
		prometheus.MustRegister(
			framesSentVec, framesReceivedVec,
			bytesSentVec, bytesReceivedVec,
			packetsSentVec, packetsRecvVec,
			poisonedVec,
		)
	})
}

// New returns a Collector labeled with channel, registering the shared
// metric vectors on first use.
func New(channel string) *Collector {
	register()
	return &Collector{
		channel:        channel,
		framesSent:     framesSentVec.WithLabelValues(channel),
		framesReceived: framesReceivedVec.WithLabelValues(channel),
		bytesSent:      bytesSentVec.WithLabelValues(channel),
		bytesReceived:  bytesReceivedVec.WithLabelValues(channel),
		packetsSent:    packetsSentVec.WithLabelValues(channel),
		packetsRecv:    packetsRecvVec.WithLabelValues(channel),
		poisonedTotal:  poisonedVec.WithLabelValues(channel),
	}
}

var _ stats.Hook = (*Collector)(nil)

func (c *Collector) FrameSent(_ uint8, packets int, bytes int) {
	c.framesSent.Inc()
	c.packetsSent.Add(float64(packets))
	c.bytesSent.Add(float64(bytes))
}

func (c *Collector) FrameReceived(_ uint8, packets int, bytes int) {
	c.framesReceived.Inc()
	c.packetsRecv.Add(float64(packets))
	c.bytesReceived.Add(float64(bytes))
}

func (c *Collector) Poisoned(error) {
	c.poisonedTotal.Inc()
}
