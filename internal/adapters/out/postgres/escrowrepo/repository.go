package escrowrepo

import (
	"context"
	"errors"

	"quadmesh/internal/core/domain/model/escrow"
	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEscrowAccountRepository implements EscrowAccountRepository using GORM.
type GormEscrowAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEscrowAccountRepository creates a new GORM escrow account repository.
func NewGormEscrowAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormEscrowAccountRepository {
	return &GormEscrowAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new escrow account. The order_id primary key makes capturing
// payment twice for the same order fail at the storage level.
func (r *GormEscrowAccountRepository) Add(ctx context.Context, aggregate *escrow.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// Update saves an existing escrow account.
func (r *GormEscrowAccountRepository) Update(ctx context.Context, aggregate *escrow.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&EscrowAccountDTO{}).
		Where("order_id = ?", dto.OrderID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// GetByOrderID retrieves the escrow account held for an order.
func (r *GormEscrowAccountRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*escrow.Account, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto EscrowAccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("escrow account", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
