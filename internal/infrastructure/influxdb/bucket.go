package influxdb

import (
	"context"
	"fmt"

	"github.com/influxdata/influxdb-client-go/v2/domain"
)

// EnsureBucket makes sure the target bucket exists with infinite retention.
//
// If the bucket is missing it is created with no expiration. If it already
// exists with a finite retention policy, a warning is logged so the operator
// can adjust it manually; historical backfill data would otherwise expire.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//
// Returns:
//   - error: ErrBucketSetup-wrapped error if the bucket cannot be created
func (c *Client) EnsureBucket(ctx context.Context) error {
	bucketsAPI := c.client.BucketsAPI()

	existing, err := bucketsAPI.FindBucketByName(ctx, c.cfg.Bucket)
	if err == nil && existing != nil {
		for _, rule := range existing.RetentionRules {
			if rule.EverySeconds > 0 {
				c.log.Warn("bucket has a finite retention policy, data may be dropped",
					"bucket", c.cfg.Bucket,
					"retention_seconds", rule.EverySeconds,
				)
			}
		}
		return nil
	}

	org, err := c.client.OrganizationsAPI().FindOrganizationByName(ctx, c.cfg.Org)
	if err != nil {
		return fmt.Errorf("%w: finding org %q: %w", ErrBucketSetup, c.cfg.Org, err)
	}

	ruleType := domain.RetentionRuleTypeExpire
	retention := domain.RetentionRule{
		Type:         &ruleType,
		EverySeconds: 0,
	}
	if _, err := bucketsAPI.CreateBucketWithName(ctx, org, c.cfg.Bucket, retention); err != nil {
		return fmt.Errorf("%w: creating bucket %q: %w", ErrBucketSetup, c.cfg.Bucket, err)
	}

	c.log.Info("created bucket with infinite retention", "bucket", c.cfg.Bucket)
	return nil
}
