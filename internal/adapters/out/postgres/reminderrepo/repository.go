package reminderrepo

import (
	"context"
	"errors"
	"time"

	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/reminder"
	"orderbot/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormReminderRepository implements ports.ReminderRepository using GORM.
type GormReminderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormReminderRepository creates a new GORM reminder repository.
func NewGormReminderRepository(db *gorm.DB, tracker aggregateTracker) *GormReminderRepository {
	return &GormReminderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new reminder.
func (r *GormReminderRepository) Add(ctx context.Context, aggregate *reminder.Reminder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves the status of an existing reminder.
func (r *GormReminderRepository) Update(ctx context.Context, aggregate *reminder.Reminder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReminderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status": dto.Status,
		"due_at": dto.DueAt,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("reminder", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves a reminder by id.
func (r *GormReminderRepository) Get(ctx context.Context, id kernel.UUID) (*reminder.Reminder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReminderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reminder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetDue returns pending reminders due at or before now, oldest first. Rows
// are locked for the rest of the transaction; rows locked by another
// instance are skipped.
func (r *GormReminderRepository) GetDue(ctx context.Context, now time.Time, limit int) ([]*reminder.Reminder, error) {
	var dtos []ReminderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ? AND due_at <= ?", int(reminder.Pending), now.UTC()).
		Order("due_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	reminders := make([]*reminder.Reminder, 0, len(dtos))
	for _, dto := range dtos {
		rem, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}

	return reminders, nil
}
