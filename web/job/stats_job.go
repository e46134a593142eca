package job

import "extractor/web/service"

// StatsJob logs the daily activity counters.
type StatsJob struct {
	statusService service.StatusService
}

func NewStatsJob() *StatsJob {
	return new(StatsJob)
}

// Run implements the cron Job interface.
func (j *StatsJob) Run() {
	j.statusService.LogStats()
}
