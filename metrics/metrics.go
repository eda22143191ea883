package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/orrery/camera"
)

// Collector bundles the simulation loop metrics
// All methods are safe on a nil *Collector so the loop runs unchanged with
// metrics disabled
type Collector struct {
	gatherer prometheus.Gatherer

	Ticks          prometheus.Counter
	FrameDuration  prometheus.Histogram
	Paused         prometheus.Gauge
	MeteorRespawns prometheus.Counter
	Picks          *prometheus.CounterVec
	Flights        *prometheus.CounterVec
	BodySpeed      *prometheus.GaugeVec
}

// NewCollector registers the metrics against reg, defaulting to the global
// registry when nil
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	ticks, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orrery_ticks_total",
		Help: "Frames run by the simulation loop.",
	}), "orrery_ticks_total")
	if err != nil {
		return nil, err
	}

	frames, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "orrery_frame_duration_seconds",
		Help:    "Wall time spent simulating and rendering one frame.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.016, 0.025, 0.05, 0.1},
	}), "orrery_frame_duration_seconds")
	if err != nil {
		return nil, err
	}

	paused, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "orrery_paused",
		Help: "1 while orbital and meteor motion is paused.",
	}), "orrery_paused")
	if err != nil {
		return nil, err
	}

	respawns, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orrery_meteor_respawns_total",
		Help: "Meteors recycled after falling below the threshold.",
	}), "orrery_meteor_respawns_total")
	if err != nil {
		return nil, err
	}

	picks, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orrery_picks_total",
		Help: "Pointer picks, labeled by kind (hover, click) and result (hit, miss).",
	}, []string{"kind", "result"}), "orrery_picks_total")
	if err != nil {
		return nil, err
	}

	flights, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orrery_flights_total",
		Help: "Camera flights, labeled by lifecycle event (started, finished).",
	}, []string{"event"}), "orrery_flights_total")
	if err != nil {
		return nil, err
	}

	speeds, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "orrery_body_speed",
		Help: "Current angular speed of each body.",
	}, []string{"body"}), "orrery_body_speed")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:       gatherer,
		Ticks:          ticks,
		FrameDuration:  frames,
		Paused:         paused,
		MeteorRespawns: respawns,
		Picks:          picks,
		Flights:        flights,
		BodySpeed:      speeds,
	}, nil
}

// Handler exposes a ready-to-use /metrics handler
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// ObserveFrame records one loop iteration
func (c *Collector) ObserveFrame(d time.Duration, paused bool, respawns int) {
	if c == nil {
		return
	}
	c.Ticks.Inc()
	c.FrameDuration.Observe(d.Seconds())
	if paused {
		c.Paused.Set(1)
	} else {
		c.Paused.Set(0)
	}
	if respawns > 0 {
		c.MeteorRespawns.Add(float64(respawns))
	}
}

// ObservePick records a hover or click pick
func (c *Collector) ObservePick(kind string, hit bool) {
	if c == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	c.Picks.WithLabelValues(kind, result).Inc()
}

// SetBodySpeed publishes the current speed of a body
func (c *Collector) SetBodySpeed(body string, speed float64) {
	if c == nil {
		return
	}
	c.BodySpeed.WithLabelValues(body).Set(speed)
}

// FlightStarted implements camera.FlightListener
func (c *Collector) FlightStarted(camera.Flight) {
	if c == nil {
		return
	}
	c.Flights.WithLabelValues("started").Inc()
}

// FlightFinished implements camera.FlightListener
func (c *Collector) FlightFinished(camera.Flight) {
	if c == nil {
		return
	}
	c.Flights.WithLabelValues("finished").Inc()
}

// register adds c to reg, returning the collector already registered under
// the same descriptor when there is one of the same type
func register[T prometheus.Collector](reg prometheus.Registerer, c T, name string) (T, error) {
	if err := reg.Register(c); err != nil {
		var zero T
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			return zero, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return zero, err
	}
	return c, nil
}
