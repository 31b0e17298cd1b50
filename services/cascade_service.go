package services

import (
	"context"
	"maps"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	blobCleanupTimeout     = 30 * time.Second
	blobCleanupConcurrency = 4
)

// CascadeService performs the writes that span several tables and must land
// together: order deletion, customer merge, customer removal, fabric
// provisioning and item creation. Every operation runs in one transaction.
type CascadeService struct {
	tx    repository.TxRunner
	store BlobStore
	log   *zap.Logger
}

func NewCascadeService(tx repository.TxRunner, store BlobStore, log *zap.Logger) *CascadeService {
	return &CascadeService{tx: tx, store: store, log: log.Named("cascade")}
}

type tabler interface {
	TableName() string
}

// orderDependents lists the tables keyed by order_no, children first.
func orderDependents() []tabler {
	out := []tabler{&models.OrderPhoto{}, &models.Item{}}
	for _, m := range models.MeasurementModels() {
		out = append(out, m)
	}
	return out
}

// OrderDeletion reports what DeleteOrder removed. OrphanedKeys lists photo
// objects that could not be removed from storage after the rows were gone.
type OrderDeletion struct {
	OrderNo      string           `json:"order_no"`
	Deleted      map[string]int64 `json:"deleted"`
	OrphanedKeys []string         `json:"orphaned_keys,omitempty"`
}

// DeleteOrder removes an order with its photos, items and every measurement
// taken for it. An order that does not exist is ErrOrderNotFound and nothing
// is changed. Stored photo objects are removed after commit; failures there
// are reported in OrphanedKeys rather than undoing the deletion.
func (s *CascadeService) DeleteOrder(ctx context.Context, orderNo string) (*OrderDeletion, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return nil, errors.Wrap(ErrValidation, "order number is required")
	}

	res := &OrderDeletion{OrderNo: orderNo, Deleted: make(map[string]int64)}
	var keys []string

	err := s.tx.WithTx(ctx, func(tx *repository.Repository) error {
		var err error
		keys, err = tx.Photos.KeysByOrder(ctx, orderNo)
		if err != nil {
			return errors.Wrapf(err, "list photos of order %s", orderNo)
		}

		for _, model := range orderDependents() {
			n, err := tx.Orders.DeleteRows(ctx, model, orderNo)
			if err != nil {
				return errors.Wrapf(err, "delete %s of order %s", model.TableName(), orderNo)
			}
			res.Deleted[model.TableName()] = n
			s.log.Debug("cascade delete", zap.String("order_no", orderNo), zap.String("table", model.TableName()), zap.Int64("rows", n))
		}

		n, err := tx.Orders.DeleteRows(ctx, &models.Order{}, orderNo)
		if err != nil {
			return errors.Wrapf(err, "delete order %s", orderNo)
		}
		if n == 0 {
			return errors.Wrapf(ErrOrderNotFound, "order %s", orderNo)
		}
		res.Deleted[models.Order{}.TableName()] = n
		return nil
	})
	if err != nil {
		s.log.Info("order deletion rolled back", zap.String("order_no", orderNo), zap.Error(err))
		return nil, err
	}

	res.OrphanedKeys = s.deleteBlobs(ctx, keys)
	s.log.Info("order deleted",
		zap.String("order_no", orderNo),
		zap.Int("photos", len(keys)),
		zap.Int("orphaned_objects", len(res.OrphanedKeys)))
	return res, nil
}

// deleteBlobs removes the objects in parallel and returns the keys that
// could not be removed. It outlives a cancelled request.
func (s *CascadeService) deleteBlobs(ctx context.Context, keys []string) []string {
	if len(keys) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), blobCleanupTimeout)
	defer cancel()

	var (
		mu     sync.Mutex
		failed []string
		g      errgroup.Group
	)
	g.SetLimit(blobCleanupConcurrency)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			if err := s.store.Delete(ctx, key); err != nil {
				s.log.Warn("photo object left behind", zap.String("key", key), zap.Error(err))
				mu.Lock()
				failed = append(failed, key)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return failed
}

// MergeResult reports the outcome of MergeCustomers.
type MergeResult struct {
	TargetID   uint             `json:"target_id"`
	MergedIDs  []uint           `json:"merged_ids"`
	Reassigned map[string]int64 `json:"reassigned"`
	Removed    int64            `json:"removed"`
}

// MergeCustomers folds every customer after the first into the first. Orders
// and measurements of the others are moved to the first customer, then the
// others are deleted. Items follow their orders.
func (s *CascadeService) MergeCustomers(ctx context.Context, ids []uint) (*MergeResult, error) {
	ids = distinctIDs(ids)
	if len(ids) < 2 {
		return nil, errors.Wrap(ErrValidation, "at least two distinct customer ids are required")
	}
	for _, id := range ids {
		if id == 0 {
			return nil, errors.Wrap(ErrValidation, "customer ids must be positive")
		}
	}

	target, others := ids[0], ids[1:]
	res := &MergeResult{TargetID: target, MergedIDs: others, Reassigned: make(map[string]int64)}

	err := s.tx.WithTx(ctx, func(tx *repository.Repository) error {
		ok, err := tx.Customers.Exists(ctx, target)
		if err != nil {
			return errors.Wrapf(err, "look up customer %d", target)
		}
		if !ok {
			return errors.Wrapf(ErrCustomerNotFound, "merge target %d", target)
		}

		for _, model := range models.CustomerOwnedModels() {
			table := model.(tabler).TableName()
			n, err := tx.Customers.ReassignReferences(ctx, model, others, target)
			if err != nil {
				return errors.Wrapf(err, "reassign %s to customer %d", table, target)
			}
			res.Reassigned[table] = n
			s.log.Debug("merge reassign", zap.String("table", table), zap.Int64("rows", n))
		}

		res.Removed, err = tx.Customers.DeleteMany(ctx, others)
		if err != nil {
			return errors.Wrapf(err, "delete merged customers %v", others)
		}
		return nil
	})
	if err != nil {
		s.log.Info("customer merge rolled back", zap.Uint("target", target), zap.Error(err))
		return nil, err
	}

	s.log.Info("customers merged", zap.Uint("target", target), zap.Uints("merged", others), zap.Int64("removed", res.Removed))
	return res, nil
}

func distinctIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// CustomerDeletion reports how many rows lost their customer reference.
type CustomerDeletion struct {
	CustomerID uint             `json:"customer_id"`
	Detached   map[string]int64 `json:"detached"`
}

// DeleteCustomer removes a customer but keeps its orders and measurements,
// clearing their customer reference. A missing customer is
// ErrCustomerNotFound and nothing is changed.
func (s *CascadeService) DeleteCustomer(ctx context.Context, id uint) (*CustomerDeletion, error) {
	res := &CustomerDeletion{CustomerID: id, Detached: make(map[string]int64)}

	err := s.tx.WithTx(ctx, func(tx *repository.Repository) error {
		for _, model := range models.CustomerOwnedModels() {
			table := model.(tabler).TableName()
			n, err := tx.Customers.ClearReferences(ctx, model, id)
			if err != nil {
				return errors.Wrapf(err, "clear customer %d from %s", id, table)
			}
			res.Detached[table] = n
		}

		err := tx.Customers.Delete(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return errors.Wrapf(ErrCustomerNotFound, "customer %d", id)
		}
		if err != nil {
			return errors.Wrapf(err, "delete customer %d", id)
		}
		return nil
	})
	if err != nil {
		s.log.Info("customer deletion rolled back", zap.Uint("customer_id", id), zap.Error(err))
		return nil, err
	}

	s.log.Info("customer deleted", zap.Uint("customer_id", id), zap.Any("detached", res.Detached))
	return res, nil
}

// EnsureFabric returns the fabric matching identifier, creating a placeholder
// when none exists. The identifier is a fabric code (any case) or a numeric
// fabric id. created is true only for the call that inserted the row. An
// empty identifier yields no fabric.
func (s *CascadeService) EnsureFabric(ctx context.Context, identifier string) (fabric *models.Fabric, created bool, err error) {
	err = s.tx.WithTx(ctx, func(tx *repository.Repository) error {
		fabric, created, err = s.ensureFabric(ctx, tx, identifier)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return fabric, created, nil
}

func (s *CascadeService) ensureFabric(ctx context.Context, tx *repository.Repository, identifier string) (*models.Fabric, bool, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, false, nil
	}

	// A numeric identifier may be a fabric id. A matching code still wins.
	if id, perr := strconv.ParseUint(identifier, 10, 64); perr == nil {
		for _, lookup := range []func() (*models.Fabric, error){
			func() (*models.Fabric, error) { return tx.Fabrics.GetByCode(ctx, identifier) },
			func() (*models.Fabric, error) { return tx.Fabrics.Get(ctx, uint(id)) },
		} {
			f, err := lookup()
			if err == nil {
				return f, false, nil
			}
			if !errors.Is(err, repository.ErrNotFound) {
				return nil, false, errors.Wrapf(err, "look up fabric %s", identifier)
			}
		}
	}

	placeholder := models.NewPlaceholderFabric(identifier)
	created, err := tx.Fabrics.InsertIfAbsent(ctx, &placeholder)
	if err != nil {
		return nil, false, errors.Wrapf(err, "provision fabric %s", identifier)
	}

	f, err := tx.Fabrics.GetByCode(ctx, identifier)
	if err != nil {
		return nil, false, errors.Wrapf(err, "read back fabric %s", identifier)
	}
	if created {
		s.log.Info("placeholder fabric created", zap.String("code", f.Code), zap.Uint("fabric_id", f.FabricID))
	}
	return f, created, nil
}

// ItemDescriptor describes one garment to add to an order. Fabric and
// LiningFabric are fabric codes or ids; either may be empty.
type ItemDescriptor struct {
	ItemName      string `json:"item_name"`
	ItemType      string `json:"item_type"`
	MeasurementID string `json:"measurement_id"`
	Fabric        string `json:"fabric"`
	LiningFabric  string `json:"lining_fabric"`
}

// measurementColumns picks the item column that holds a garment's measurement.
var measurementColumns = map[models.GarmentType]func(*models.Item, *string){
	models.GarmentJacket: func(it *models.Item, id *string) { it.JacketMeasurementID = id },
	models.GarmentShirt:  func(it *models.Item, id *string) { it.ShirtMeasurementID = id },
	models.GarmentPant:   func(it *models.Item, id *string) { it.PantMeasurementID = id },
}

// CreateItems adds every descriptor to the order or none of them. Fabrics
// that are not registered yet are provisioned as placeholders in the same
// transaction.
func (s *CascadeService) CreateItems(ctx context.Context, orderNo string, descs []ItemDescriptor) ([]models.Item, error) {
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return nil, errors.Wrap(ErrValidation, "order number is required")
	}
	if len(descs) == 0 {
		return nil, errors.Wrap(ErrValidation, "at least one item is required")
	}

	var items []models.Item
	err := s.tx.WithTx(ctx, func(tx *repository.Repository) error {
		ok, err := tx.Orders.Exists(ctx, orderNo)
		if err != nil {
			return errors.Wrapf(err, "look up order %s", orderNo)
		}
		if !ok {
			return errors.Wrapf(ErrOrderNotFound, "order %s", orderNo)
		}

		items = make([]models.Item, 0, len(descs))
		for i, d := range descs {
			item, err := s.buildItem(ctx, tx, orderNo, d)
			if err != nil {
				return errors.Wrapf(err, "item %d", i+1)
			}
			if err := tx.Items.Create(ctx, item); err != nil {
				return errors.Wrapf(err, "insert item %d", i+1)
			}
			items = append(items, *item)
		}
		return nil
	})
	if err != nil {
		s.log.Info("item creation rolled back", zap.String("order_no", orderNo), zap.Int("items", len(descs)), zap.Error(err))
		return nil, err
	}

	s.log.Info("items created", zap.String("order_no", orderNo), zap.Int("items", len(items)))
	return items, nil
}

// CreateItem adds a single item to the order.
func (s *CascadeService) CreateItem(ctx context.Context, orderNo string, d ItemDescriptor) (*models.Item, error) {
	items, err := s.CreateItems(ctx, orderNo, []ItemDescriptor{d})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

// itemFabricRefs pairs each item fabric column with the update field that
// names the fabric by code instead of id.
var itemFabricRefs = []struct{ column, identifier string }{
	{column: "fabric_id", identifier: "fabric"},
	{column: "lining_fabric_id", identifier: "lining_fabric"},
}

// UpdateItem applies an allow-listed update to an item in one transaction.
// fabric_id and lining_fabric_id must name existing fabrics
// (ErrFabricNotFound otherwise). fabric and lining_fabric take a code or id
// and are resolved like they are on creation, placeholders included.
func (s *CascadeService) UpdateItem(ctx context.Context, id uint, fields map[string]any) error {
	fields = maps.Clone(fields)
	return s.tx.WithTx(ctx, func(tx *repository.Repository) error {
		for _, ref := range itemFabricRefs {
			if v, ok := fields[ref.identifier]; ok {
				delete(fields, ref.identifier)
				code, ok := v.(string)
				if !ok {
					return errors.Wrapf(ErrValidation, "%s must be a fabric code", ref.identifier)
				}
				fabric, _, err := s.ensureFabric(ctx, tx, code)
				if err != nil {
					return err
				}
				if fabric == nil {
					return errors.Wrapf(ErrValidation, "%s is empty", ref.identifier)
				}
				fields[ref.column] = fabric.FabricID
				continue
			}

			v, ok := fields[ref.column]
			if !ok || v == nil {
				continue
			}
			fabricID, ok := positiveID(v)
			if !ok {
				return errors.Wrapf(ErrValidation, "%s must be a positive integer", ref.column)
			}
			exists, err := tx.Fabrics.Exists(ctx, fabricID)
			if err != nil {
				return errors.Wrapf(err, "look up fabric %d", fabricID)
			}
			if !exists {
				return errors.Wrapf(ErrFabricNotFound, "fabric %d", fabricID)
			}
			fields[ref.column] = fabricID
		}

		if err := tx.Items.Update(ctx, id, fields); err != nil {
			return errors.Wrapf(err, "update item %d", id)
		}
		return nil
	})
}

// positiveID accepts a JSON number or a Go integer holding a whole positive value.
func positiveID(v any) (uint, bool) {
	switch n := v.(type) {
	case float64:
		if n < 1 || n != float64(uint(n)) {
			return 0, false
		}
		return uint(n), true
	case int:
		return uint(n), n > 0
	case uint:
		return n, n > 0
	}
	return 0, false
}

func (s *CascadeService) buildItem(ctx context.Context, tx *repository.Repository, orderNo string, d ItemDescriptor) (*models.Item, error) {
	garment, ok := models.ParseGarmentType(d.ItemType)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownGarment, "%q", d.ItemType)
	}
	setMeasurement := measurementColumns[garment]

	measurementID := strings.TrimSpace(d.MeasurementID)
	if measurementID == "" {
		return nil, errors.Wrap(ErrValidation, "measurement id is required")
	}
	exists, err := tx.Measurements.Exists(ctx, garment, measurementID, orderNo)
	if err != nil {
		return nil, errors.Wrapf(err, "look up %s measurement %s", garment, measurementID)
	}
	if !exists {
		return nil, errors.Wrapf(ErrMeasurementMissing, "%s measurement %s of order %s", garment, measurementID, orderNo)
	}

	name := strings.TrimSpace(d.ItemName)
	if name == "" {
		name = string(garment)
	}
	item := &models.Item{OrderNo: orderNo, ItemName: name, ItemType: garment}
	setMeasurement(item, &measurementID)

	fabric, _, err := s.ensureFabric(ctx, tx, d.Fabric)
	if err != nil {
		return nil, err
	}
	if fabric != nil {
		item.FabricID = &fabric.FabricID
	}

	lining, _, err := s.ensureFabric(ctx, tx, d.LiningFabric)
	if err != nil {
		return nil, err
	}
	if lining != nil {
		item.LiningFabricID = &lining.FabricID
	}
	return item, nil
}
