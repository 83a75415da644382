package responses

import (
	"math"
	"runtime"

	"github.com/45h1f/learn-docker/internal/stats"
)

// InfoResponse describes the process and its host. The dependency endpoint
// fields are only populated by the app that has dependencies configured.
type InfoResponse struct {
	GoVersion   string  `json:"go_version"`
	Hostname    string  `json:"hostname"`
	Environment string  `json:"environment"`
	Debug       bool    `json:"debug"`
	Version     string  `json:"version"`
	MemoryMB    float64 `json:"memory_mb"`
	CPUCount    int     `json:"cpu_count"`

	DBHost    string `json:"db_host,omitempty"`
	DBName    string `json:"db_name,omitempty"`
	RedisHost string `json:"redis_host,omitempty"`
}

func NewInfoResponse(version, environment, hostname string, debug bool, snap stats.Snapshot) InfoResponse {
	return InfoResponse{
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
		Environment: environment,
		Debug:       debug,
		Version:     version,
		MemoryMB:    RoundMB(snap.MemoryMB()),
		CPUCount:    snap.CPUCount,
	}
}

// RoundMB keeps memory figures to two decimals, the precision the pages show.
func RoundMB(mb float64) float64 {
	return math.Round(mb*100) / 100
}
