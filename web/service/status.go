package service

import (
	"time"

	"extractor/logger"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"go.uber.org/atomic"
)

// process-wide counters shown on the profile page
var (
	loginSuccesses = atomic.NewInt64(0)
	loginFailures  = atomic.NewInt64(0)
	registrations  = atomic.NewInt64(0)
)

func CountLoginSuccess() { loginSuccesses.Inc() }
func CountLoginFailure() { loginFailures.Inc() }
func CountRegistration() { registrations.Inc() }

// Status is a snapshot of host health and panel activity.
type Status struct {
	CPUPercent     float64 `json:"cpuPercent"`
	MemUsed        uint64  `json:"memUsed"`
	MemTotal       uint64  `json:"memTotal"`
	Uptime         uint64  `json:"uptime"`
	LoginSuccesses int64   `json:"loginSuccesses"`
	LoginFailures  int64   `json:"loginFailures"`
	Registrations  int64   `json:"registrations"`
}

// StatusService reports host health for the profile page's status card.
type StatusService struct{}

func (s *StatusService) GetStatus() *Status {
	status := &Status{
		LoginSuccesses: loginSuccesses.Load(),
		LoginFailures:  loginFailures.Load(),
		Registrations:  registrations.Load(),
	}

	percents, err := cpu.Percent(0, false)
	if err != nil {
		logger.Warning("get cpu percent failed:", err)
	} else if len(percents) > 0 {
		status.CPUPercent = percents[0]
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logger.Warning("get virtual memory failed:", err)
	} else {
		status.MemUsed = memInfo.Used
		status.MemTotal = memInfo.Total
	}

	uptime, err := host.Uptime()
	if err != nil {
		logger.Warning("get uptime failed:", err)
	} else {
		status.Uptime = uptime
	}

	return status
}

// LogStats writes the activity counters to the log; scheduled daily.
func (s *StatusService) LogStats() {
	logger.Infof("daily stats: %d successful logins, %d failed logins, %d registrations (as of %s)",
		loginSuccesses.Load(), loginFailures.Load(), registrations.Load(),
		time.Now().Format("2006-01-02 15:04:05"))
}
