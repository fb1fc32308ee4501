package domain

// HealthPolicy decides the pregnancy's aggregate health status after a
// checkup is appended.
type HealthPolicy func(current HealthStatus, history []CheckupRecord, latest CheckupRecord) HealthStatus

// LastWriteWins adopts the status reported by the newest checkup, ignoring
// history.
func LastWriteWins(_ HealthStatus, _ []CheckupRecord, latest CheckupRecord) HealthStatus {
	return latest.HealthStatus
}
