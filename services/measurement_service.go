package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// MeasurementService records measurements against an order. A record takes
// its customer and date from the order at the moment it is created.
type MeasurementService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMeasurementService(repo *repository.Repository, log *zap.Logger) *MeasurementService {
	return &MeasurementService{repo: repo, log: log.Named("measurement")}
}

// Create assigns rec a fresh id, copies the order's customer and date onto it
// and stores it.
func (s *MeasurementService) Create(ctx context.Context, orderNo string, rec models.MeasurementRecord) error {
	base := rec.Base()
	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		order, err := tx.Orders.Get(ctx, orderNo)
		if errors.Is(err, repository.ErrNotFound) {
			return errors.Wrapf(ErrOrderNotFound, "order %s", orderNo)
		}
		if err != nil {
			return errors.Wrapf(err, "look up order %s", orderNo)
		}

		base.MeasurementID = uuid.NewString()
		base.OrderNo = order.OrderNo
		base.CustomerID = order.CustomerID
		base.Date = order.Date
		if err := tx.Measurements.Create(ctx, rec); err != nil {
			return errors.Wrapf(err, "insert %s", rec.TableName())
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Debug("measurement recorded", zap.String("table", rec.TableName()), zap.String("order_no", orderNo), zap.String("measurement_id", base.MeasurementID))
	return nil
}

func (s *MeasurementService) ListByCustomer(ctx context.Context, garment models.GarmentType, final bool, customerID uint) (any, error) {
	return s.repo.Measurements.ListByCustomer(ctx, garment, final, customerID)
}

func (s *MeasurementService) ListByOrder(ctx context.Context, garment models.GarmentType, final bool, orderNo string) (any, error) {
	return s.repo.Measurements.ListByOrder(ctx, garment, final, orderNo)
}
