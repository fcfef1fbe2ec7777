package ports

import (
	"context"

	"fieldops/internal/core/domain/model/jobupdate"
)

// JobUpdateRepository is append-only: entries are never updated or deleted.
type JobUpdateRepository interface {
	Add(ctx context.Context, entry *jobupdate.JobUpdate) error
}
