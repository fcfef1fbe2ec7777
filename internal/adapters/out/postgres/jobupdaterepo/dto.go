// Package jobupdaterepo stores the append-only field log in job_updates.
package jobupdaterepo

import (
	"time"

	"fieldops/internal/core/domain/model/jobupdate"

	"github.com/google/uuid"
)

// JobUpdateDTO is the job_updates table row. Rows are inserted only.
type JobUpdateDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index:idx_job_updates_order_created,priority:1"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	Type      string    `gorm:"type:text;not null"`
	Message   string    `gorm:"type:text;not null"`
	Needs     *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index:idx_job_updates_order_created,priority:2;autoCreateTime:false"`
}

func (JobUpdateDTO) TableName() string {
	return "job_updates"
}

func fromDomain(u *jobupdate.JobUpdate) JobUpdateDTO {
	return JobUpdateDTO{
		ID:        u.ID().Bytes(),
		OrderID:   u.OrderID().Bytes(),
		AuthorID:  u.AuthorID().Bytes(),
		Type:      u.Type().String(),
		Message:   u.Message(),
		Needs:     u.Needs(),
		CreatedAt: u.CreatedAt(),
	}
}
