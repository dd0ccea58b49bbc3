package repository

import (
	"studio-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const lineItemBatchSize = 100

// replaceContainerLineItems deletes every line item of the container and inserts items in
// their place, assigning fresh ids to items. Must run inside a transaction.
func replaceContainerLineItems(tx *gorm.DB, containerType models.ContainerType, containerID uuid.UUID, items []models.LineItem) error {
	if err := tx.Where("container_type = ? AND container_id = ?", containerType, containerID).
		Delete(&models.LineItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	for i := range items {
		items[i].ID = uuid.Nil
		items[i].ContainerType = containerType
		items[i].ContainerID = containerID
	}
	return tx.CreateInBatches(&items, lineItemBatchSize).Error
}

// containerLineItems loads a container's line items in display order
func containerLineItems(db *gorm.DB, containerType models.ContainerType, containerIDs ...uuid.UUID) ([]models.LineItem, error) {
	var items []models.LineItem
	if len(containerIDs) == 0 {
		return items, nil
	}
	err := db.Where("container_type = ? AND container_id IN ?", containerType, containerIDs).
		Order("sort_order ASC, created_at ASC, id ASC").
		Find(&items).Error
	return items, err
}
