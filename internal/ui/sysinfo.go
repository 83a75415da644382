package ui

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/45h1f/learn-docker/internal/common"
	"github.com/45h1f/learn-docker/internal/config"
	"github.com/45h1f/learn-docker/internal/stats"
)

// SysinfoPage renders the single-container demo's home page.
type SysinfoPage struct {
	cfg       config.Config
	collector *stats.Collector
}

func NewSysinfoPage(cfg config.Config, collector *stats.Collector) *SysinfoPage {
	return &SysinfoPage{cfg: cfg, collector: collector}
}

func (p *SysinfoPage) Home(w http.ResponseWriter, r *http.Request) {
	snap := p.collector.Collect(r.Context())

	render(w, sysinfoTmpl, map[string]interface{}{
		"MemoryMB":       fmt.Sprintf("%.2f", snap.MemoryMB()),
		"CPUCount":       snap.CPUCount,
		"GoVersion":      runtime.Version(),
		"Hostname":       common.Hostname(),
		"RequestsServed": snap.RequestCount,
		"Timestamp":      time.Now().Format("2006-01-02 15:04:05"),
		"Environment":    p.cfg.Environment,
		"Debug":          p.cfg.Debug,
		"Version":        p.cfg.Version,
	})
}
