package newapp

import (
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

const healthProbeSchedule = "@every 60s"

// Health_Monitor periodically probes the configured endpoint list and logs
// reachability transitions. It generalizes the one-shot warm-up probe into an
// ongoing signal for operators; the generator never consults it, the
// iteration order stays fixed regardless of health.
type Health_Monitor struct {
	endpoints []string
	scheduler *cron.Cron
	client    *http.Client
	logger    *log.Logger

	mu        sync.Mutex
	reachable map[string]bool
}

// NewHealthMonitor builds a monitor over the configuration's endpoint list.
func NewHealthMonitor(cfg *Config) *Health_Monitor {
	return &Health_Monitor{
		endpoints: cfg.Endpoints,
		scheduler: cron.New(),
		client:    &http.Client{Timeout: 5 * time.Second},
		logger:    log.New(os.Stdout, "[health] ", log.LstdFlags),
		reachable: make(map[string]bool),
	}
}

// Start probes every endpoint once, then keeps probing on the fixed schedule.
func (h *Health_Monitor) Start() error {
	h.probeAll()
	if _, err := h.scheduler.AddFunc(healthProbeSchedule, h.probeAll); err != nil {
		return err
	}
	h.scheduler.Start()
	return nil
}

// Stop halts the probe schedule. A probe already running completes.
func (h *Health_Monitor) Stop() {
	h.scheduler.Stop()
}

// Reachable returns a snapshot of the last observed state per endpoint.
func (h *Health_Monitor) Reachable() map[string]bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make(map[string]bool, len(h.reachable))
	for k, v := range h.reachable {
		out[k] = v
	}
	return out
}

// RegisterRoutes exposes the monitor's per-endpoint state as GET /health.
// The status is "ok" while at least one endpoint is reachable, "degraded"
// otherwise.
func (h *Health_Monitor) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", func(c *gin.Context) {
		endpoints := h.Reachable()
		status := "degraded"
		for _, up := range endpoints {
			if up {
				status = "ok"
				break
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    status,
			"endpoints": endpoints,
		})
	})
}

func (h *Health_Monitor) probeAll() {
	for _, endpoint := range h.endpoints {
		up := h.probe(endpoint)

		h.mu.Lock()
		prev, known := h.reachable[endpoint]
		h.reachable[endpoint] = up
		h.mu.Unlock()

		if !known || prev != up {
			state := "reachable"
			if !up {
				state = "unreachable"
			}
			h.logger.Printf("endpoint %s is %s", endpoint, state)
		}
	}
}

// probe hits the endpoint root; Ollama answers a plain 200 there.
func (h *Health_Monitor) probe(endpoint string) bool {
	resp, err := h.client.Get(endpoint + "/")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
