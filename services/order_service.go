package services

import (
	"context"
	"strings"
	"time"

	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// OrderService creates orders. Deletion goes through CascadeService.
type OrderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) *OrderService {
	return &OrderService{repo: repo, log: log.Named("order")}
}

// Create stores a new order under its caller-supplied number and stamps the
// customer's last ordered date. The number must not be in use.
func (s *OrderService) Create(ctx context.Context, order *models.Order) error {
	order.OrderNo = strings.TrimSpace(order.OrderNo)
	if order.OrderNo == "" {
		return errors.Wrap(ErrValidation, "order number is required")
	}
	if order.Date.IsZero() {
		order.Date = time.Now().UTC()
	}

	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		exists, err := tx.Orders.Exists(ctx, order.OrderNo)
		if err != nil {
			return errors.Wrapf(err, "look up order %s", order.OrderNo)
		}
		if exists {
			return errors.Wrapf(ErrOrderExists, "%s", order.OrderNo)
		}

		if order.CustomerID != nil {
			ok, err := tx.Customers.Exists(ctx, *order.CustomerID)
			if err != nil {
				return errors.Wrapf(err, "look up customer %d", *order.CustomerID)
			}
			if !ok {
				return errors.Wrapf(ErrCustomerNotFound, "customer %d", *order.CustomerID)
			}
		}

		if err := tx.Orders.Create(ctx, order); err != nil {
			return errors.Wrapf(err, "insert order %s", order.OrderNo)
		}

		if order.CustomerID != nil {
			if err := tx.Customers.TouchLastOrdered(ctx, *order.CustomerID, order.Date); err != nil {
				return errors.Wrapf(err, "stamp customer %d", *order.CustomerID)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("order created", zap.String("order_no", order.OrderNo))
	return nil
}
