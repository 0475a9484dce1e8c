package mysql

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"pix-checkout/internal/domain"
	"pix-checkout/internal/repository"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Save(rec *domain.OrderRecord) error {
	result := r.db.Create(rec)
	if result.Error != nil {
		log.Printf("audit save error: %v", result.Error)
		return result.Error
	}
	if rec.ID == 0 {
		return errors.New("failed to assign audit record ID")
	}
	return nil
}

func (r *orderRepo) UpdateStatus(orderID string, status domain.OrderStatus) error {
	result := r.db.Model(&domain.OrderRecord{}).
		Where("order_id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		log.Printf("audit status update error: %v", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("no audit record for order " + orderID)
	}
	return nil
}

func (r *orderRepo) FindByOrderID(orderID string) (*domain.OrderRecord, error) {
	var rec domain.OrderRecord
	if err := r.db.Where("order_id = ?", orderID).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindByOrderID error: %v", err)
		return nil, err
	}
	return &rec, nil
}
