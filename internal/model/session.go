package model

import "time"

// DownloadSession is a snapshot of the single transient download owned by
// the update coordinator. At most one session is active at any time;
// concurrent downloads are rejected, not queued.
type DownloadSession struct {
	ID         string
	ProgramID  string
	Active     bool
	Downloaded int64
	Total      int64 // 0 when the server declared no content length
	Percent    int
	StartedAt  time.Time
}

// Elapsed returns the time since the session started, or zero for an
// empty session.
func (ds DownloadSession) Elapsed() time.Duration {
	if ds.StartedAt.IsZero() {
		return 0
	}
	return time.Since(ds.StartedAt)
}

// Throughput returns the average transfer rate in bytes per second.
func (ds DownloadSession) Throughput() float64 {
	elapsed := ds.Elapsed().Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(ds.Downloaded) / elapsed
}
