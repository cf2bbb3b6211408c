package database

import (
	"context"
	"time"
)

// PoolHealth is a point-in-time view of database connectivity and the
// connection pool.
type PoolHealth struct {
	Status         string `json:"status"`
	ResponseTimeMS int64  `json:"response_time_ms"`
	Open           int    `json:"open_connections"`
	InUse          int    `json:"in_use"`
	Idle           int    `json:"idle"`
	WaitCount      int64  `json:"wait_count"`
	WaitMS         int64  `json:"wait_duration_ms"`
	MaxOpen        int    `json:"max_open_conns"`
}

// Health pings the database and reports pool statistics.
func (c *Client) Health(ctx context.Context) (*PoolHealth, error) {
	start := time.Now()
	if err := c.db.PingContext(ctx); err != nil {
		return &PoolHealth{
			Status:         "unhealthy",
			ResponseTimeMS: time.Since(start).Milliseconds(),
		}, err
	}

	s := c.db.Stats()
	return &PoolHealth{
		Status:         "healthy",
		ResponseTimeMS: time.Since(start).Milliseconds(),
		Open:           s.OpenConnections,
		InUse:          s.InUse,
		Idle:           s.Idle,
		WaitCount:      s.WaitCount,
		WaitMS:         s.WaitDuration.Milliseconds(),
		MaxOpen:        s.MaxOpenConnections,
	}, nil
}
