package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"washloop.backend/internal/domain/entities"
	domainerrors "washloop.backend/internal/domain/errors"
	"washloop.backend/internal/infrastructure/models"
	"washloop.backend/pkg/utils"
)

// NotificationRepository implements customer notification operations
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new unread notification
func (r *NotificationRepository) Create(ctx context.Context, n *entities.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = utils.GenerateUUIDv7()
	}
	n.CreatedAt = time.Now()

	m := &models.Notification{
		ID:         n.ID,
		CustomerID: n.CustomerID,
		Title:      n.Title,
		Message:    n.Message,
		Read:       n.Read,
		CreatedAt:  n.CreatedAt,
	}

	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(m).Error
}

// GetByCustomerID lists a customer's notifications, newest first
func (r *NotificationRepository) GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entities.Notification, error) {
	var ms []models.Notification
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Notification, 0, len(ms))
	for i := range ms {
		items = append(items, &entities.Notification{
			ID:         ms[i].ID,
			CustomerID: ms[i].CustomerID,
			Title:      ms[i].Title,
			Message:    ms[i].Message,
			Read:       ms[i].Read,
			CreatedAt:  ms[i].CreatedAt,
		})
	}
	return items, nil
}

// MarkRead marks one of the customer's notifications as read
func (r *NotificationRepository) MarkRead(ctx context.Context, id, customerID uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND customer_id = ?", id, customerID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
