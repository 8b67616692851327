// Package shop serves an inventory store, a vendor registry, and a
// sold-item ledger as one system.
//
// A Shop serializes every operation with a mutex so a single instance
// may be shared by concurrent HTTP handlers. The packages it wraps are
// not safe for concurrent use by themselves.
package shop

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/micromdm/nanostock/catalog"
	"github.com/micromdm/nanostock/inventory"
	"github.com/micromdm/nanostock/ledger"
	"github.com/micromdm/nanostock/log/logkeys"
	"github.com/micromdm/nanostock/report"
	"github.com/micromdm/nanostock/subsystem/vendors/storage"
	"github.com/micromdm/nanostock/subsystem/vendors/storage/inmem"

	"github.com/micromdm/nanolib/log"
	"github.com/micromdm/nanolib/log/ctxlog"
)

var ErrNoCode = errors.New("no product code supplied")

// Shop is the inventory management system.
type Shop struct {
	mu      sync.Mutex
	store   *inventory.Store
	ledger  *ledger.Ledger
	vendors storage.Storage

	logger  log.Logger
	metrics *Metrics
}

// Options configure the shop.
type Option func(*Shop)

// WithLogger sets the shop logger.
func WithLogger(logger log.Logger) Option {
	return func(s *Shop) {
		s.logger = logger
	}
}

// WithMetrics turns on metrics collection.
func WithMetrics(m *Metrics) Option {
	return func(s *Shop) {
		s.metrics = m
	}
}

// New creates a new shop with an empty store and ledger.
// Vendors are registered in vendors; an in-memory registry is used if it is nil.
func New(vendors storage.Storage, opts ...Option) *Shop {
	if vendors == nil {
		vendors = inmem.New()
	}
	s := &Shop{
		store:   inventory.NewStore(),
		ledger:  ledger.New(),
		vendors: vendors,
		logger:  log.NopLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddItem adds item to the store container for its category.
func (s *Shop) AddItem(ctx context.Context, item inventory.Item) error {
	logger := ctxlog.Logger(ctx, s.logger).With(
		logkeys.Category, item.Category,
		logkeys.ItemName, item.Name,
	)
	d, err := inventory.DisciplineOf(item.Category)
	if err != nil {
		logger.Info(logkeys.Message, "add item", logkeys.Error, err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.store.AddItem(item); err != nil {
		logger.Info(logkeys.Message, "add item", logkeys.Error, err)
		return err
	}

	logger.Debug(logkeys.Message, "added item", logkeys.Discipline, d)
	if s.metrics != nil {
		s.metrics.itemsAdded.WithLabelValues(item.Category.String(), d.String()).Inc()
		s.metrics.itemsHeld.WithLabelValues(item.Category.String()).Set(float64(s.store.Len(item.Category)))
	}
	return nil
}

// RemoveItem removes an item from the store container for item's category.
// See inventory.Store.RemoveItem for the removal rules.
func (s *Shop) RemoveItem(ctx context.Context, item inventory.Item) (*inventory.Item, error) {
	logger := ctxlog.Logger(ctx, s.logger).With(logkeys.Category, item.Category)
	d, err := inventory.DisciplineOf(item.Category)
	if err != nil {
		logger.Info(logkeys.Message, "remove item", logkeys.Error, err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	removed, err := s.store.RemoveItem(item)
	if errors.Is(err, inventory.ErrContainerEmpty) {
		logger.Info(logkeys.Message, "remove item", logkeys.Error, err)
		if s.metrics != nil {
			s.metrics.emptyRemovals.WithLabelValues(item.Category.String()).Inc()
		}
		return nil, err
	} else if err != nil {
		logger.Info(logkeys.Message, "remove item", logkeys.Error, err)
		return nil, err
	}

	if removed == nil {
		logger.Debug(logkeys.Message, "no equal item held", logkeys.ItemName, item.Name)
		return nil, nil
	}

	logger.Debug(
		logkeys.Message, "removed item",
		logkeys.Discipline, d,
		logkeys.ItemName, removed.Name,
	)
	if s.metrics != nil {
		s.metrics.itemsRemoved.WithLabelValues(item.Category.String(), d.String()).Inc()
		s.metrics.itemsHeld.WithLabelValues(item.Category.String()).Set(float64(s.store.Len(item.Category)))
	}
	return removed, nil
}

// Items returns the items currently held for c in insertion order.
func (s *Shop) Items(_ context.Context, c inventory.Category) ([]inventory.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Items(c)
}

// AddVendor registers v, replacing any vendor with the same name.
func (s *Shop) AddVendor(ctx context.Context, v *catalog.Vendor) error {
	if v == nil || v.Name() == "" {
		return storage.ErrNoName
	}
	logger := ctxlog.Logger(ctx, s.logger).With(logkeys.VendorName, v.Name())

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.vendors.RetrieveVendor(ctx, v.Name())
	replacing := err == nil
	if err != nil && !errors.Is(err, storage.ErrVendorNotFound) {
		logger.Info(logkeys.Message, "retrieve vendor", logkeys.Error, err)
		return fmt.Errorf("retrieving vendor: %w", err)
	}

	if err = s.vendors.StoreVendor(ctx, v); err != nil {
		logger.Info(logkeys.Message, "store vendor", logkeys.Error, err)
		return fmt.Errorf("storing vendor: %w", err)
	}

	logger.Debug(
		logkeys.Message, "stored vendor",
		logkeys.GenericCount, v.Len(),
		"replaced", replacing,
	)
	if s.metrics != nil && !replacing {
		s.metrics.vendors.Inc()
	}
	return nil
}

// Vendor returns the vendor registered under name.
func (s *Shop) Vendor(ctx context.Context, name string) (*catalog.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vendors.RetrieveVendor(ctx, name)
}

// SellItem marks code as sold.
func (s *Shop) SellItem(ctx context.Context, code string) error {
	if code == "" {
		return ErrNoCode
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.MarkSold(code)

	ctxlog.Logger(ctx, s.logger).Debug(
		logkeys.Message, "marked sold",
		logkeys.ProductCode, code,
	)
	if s.metrics != nil {
		s.metrics.soldCodes.Set(float64(s.ledger.Len()))
	}
	return nil
}

// IsSold reports whether code has been marked sold.
func (s *Shop) IsSold(_ context.Context, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.IsSold(code)
}

// SalesReport counts sold catalog items for every registered vendor,
// in registration order.
func (s *Shop) SalesReport(ctx context.Context) ([]report.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vendors, err := s.vendors.RetrieveVendors(ctx)
	if err != nil {
		ctxlog.Logger(ctx, s.logger).Info(logkeys.Message, "retrieve vendors", logkeys.Error, err)
		return nil, fmt.Errorf("retrieving vendors: %w", err)
	}
	return report.Generate(vendors, s.ledger), nil
}

// SoldCodes returns the sorted codes marked sold.
func (s *Shop) SoldCodes(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Codes(), nil
}
