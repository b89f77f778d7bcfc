package influxdb

import (
	"context"
	"fmt"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/catgar/catgar/internal/points"
)

// WriteBatch writes one category's points for one day to InfluxDB.
//
// The write is synchronous: it returns only after the server has accepted
// the batch, so a failure can be recorded against the category that produced
// it. Point identity in InfluxDB is (measurement, tag set, timestamp), which
// makes re-sending a batch after a partial failure an overwrite, not a
// duplicate.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - batch: Points to write; an empty batch is a no-op
//
// Returns:
//   - error: ErrWriteFailed-wrapped error if the server rejects the batch
func (c *Client) WriteBatch(ctx context.Context, batch []points.Point) error {
	if len(batch) == 0 {
		return nil
	}

	pts := make([]*write.Point, 0, len(batch))
	for _, p := range batch {
		pts = append(pts, toWritePoint(p))
	}

	if err := c.writeAPI.WritePoint(ctx, pts...); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

// toWritePoint converts a core measurement point to the client's
// line-protocol point. The declared precision is honoured by truncating the
// timestamp; line protocol itself is written at full resolution.
func toWritePoint(p points.Point) *write.Point {
	tags := make(map[string]string, len(p.Tags))
	for _, t := range p.Tags {
		tags[t.Key] = t.Value
	}

	fields := make(map[string]interface{}, len(p.Fields))
	for k, v := range p.Fields {
		fields[k] = v
	}

	ts := p.Time
	switch p.Precision {
	case points.PrecisionMillisecond:
		ts = ts.Truncate(time.Millisecond)
	default:
		ts = ts.Truncate(time.Second)
	}

	return write.NewPoint(p.Measurement, tags, fields, ts)
}
