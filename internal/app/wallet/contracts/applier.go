package contracts

import (
	"context"

	"github.com/satstreet/pricing-service/internal/pkg/committer"
)

// PlanApplier applies a commit plan atomically. Satisfied by
// *committer.Committer in production.
type PlanApplier interface {
	Apply(ctx context.Context, plan *committer.CommitPlan) error
}
