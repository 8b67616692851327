// Package http contains HTTP handlers for working with the shop.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/micromdm/nanostock/catalog"
	"github.com/micromdm/nanostock/http/api"
	"github.com/micromdm/nanostock/inventory"
	"github.com/micromdm/nanostock/log/logkeys"
	"github.com/micromdm/nanostock/report"
	"github.com/micromdm/nanostock/shop"
	"github.com/micromdm/nanostock/subsystem/vendors/storage"

	"github.com/alexedwards/flow"
	"github.com/micromdm/nanolib/log"
	"github.com/micromdm/nanolib/log/ctxlog"
	"github.com/shopspring/decimal"
)

var (
	ErrNoName     = errors.New("no name provided")
	ErrNoCategory = errors.New("no category provided")
	ErrNoCode     = errors.New("no product code provided")
)

type ItemStore interface {
	AddItem(ctx context.Context, item inventory.Item) error
	RemoveItem(ctx context.Context, item inventory.Item) (*inventory.Item, error)
	Items(ctx context.Context, c inventory.Category) ([]inventory.Item, error)
}

type VendorRegistry interface {
	AddVendor(ctx context.Context, v *catalog.Vendor) error
	Vendor(ctx context.Context, name string) (*catalog.Vendor, error)
}

type Seller interface {
	SellItem(ctx context.Context, code string) error
}

type Reporter interface {
	SalesReport(ctx context.Context) ([]report.Line, error)
	SoldCodes(ctx context.Context) ([]string, error)
}

// Item is an item in a request body. Category is required: the zero
// Category is a real category and must not be assumed.
type Item struct {
	Name     string              `json:"name"`
	Price    decimal.Decimal     `json:"price"`
	Category *inventory.Category `json:"category"`
}

// InventoryItem converts i to an inventory item.
func (i Item) InventoryItem() (inventory.Item, error) {
	if i.Category == nil {
		return inventory.Item{}, ErrNoCategory
	}
	return inventory.Item{Name: i.Name, Price: i.Price, Category: *i.Category}, nil
}

// decodeItem decodes a JSON request item from r.
func decodeItem(r io.Reader) (inventory.Item, error) {
	var req Item
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return inventory.Item{}, err
	}
	return req.InventoryItem()
}

// param returns the unescaped route parameter key.
func param(r *http.Request, key string) string {
	v := flow.Param(r.Context(), key)
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

// statusCode maps err to an HTTP status. Zero means Internal Server Error.
func statusCode(err error) int {
	switch {
	case errors.Is(err, inventory.ErrContainerEmpty):
		return http.StatusConflict
	case errors.Is(err, inventory.ErrInvalidCategory),
		errors.Is(err, storage.ErrNoName),
		errors.Is(err, ErrNoCategory),
		errors.Is(err, shop.ErrNoCode):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrVendorNotFound):
		return http.StatusNotFound
	}
	return 0
}

// AddItemHandler returns an HTTP handler that adds the JSON item in the body to the store.
func AddItemHandler(store ItemStore, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := ctxlog.Logger(r.Context(), logger)
		item, err := decodeItem(r.Body)
		if err != nil {
			logger.Info(logkeys.Message, "decoding body", logkeys.Error, err)
			api.JSONError(w, err, http.StatusBadRequest)
			return
		}

		logger = logger.With(logkeys.Category, item.Category, logkeys.ItemName, item.Name)
		if err = store.AddItem(r.Context(), item); err != nil {
			logger.Info(logkeys.Message, "adding item", logkeys.Error, err)
			api.JSONError(w, err, statusCode(err))
			return
		}

		logger.Debug(logkeys.Message, "added item")
		w.WriteHeader(http.StatusNoContent)
	}
}

// RemoveItemHandler returns an HTTP handler that removes an item from the
// container of the JSON item's category and responds with the removed item.
// No Content is sent when an unordered container held no equal item.
func RemoveItemHandler(store ItemStore, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := ctxlog.Logger(r.Context(), logger)
		item, err := decodeItem(r.Body)
		if err != nil {
			logger.Info(logkeys.Message, "decoding body", logkeys.Error, err)
			api.JSONError(w, err, http.StatusBadRequest)
			return
		}

		logger = logger.With(logkeys.Category, item.Category)
		removed, err := store.RemoveItem(r.Context(), item)
		if err != nil {
			logger.Info(logkeys.Message, "removing item", logkeys.Error, err)
			api.JSONError(w, err, statusCode(err))
			return
		}
		if removed == nil {
			logger.Debug(logkeys.Message, "nothing removed")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		logger.Debug(logkeys.Message, "removed item", logkeys.ItemName, removed.Name)
		if err = api.JSONResponse(w, removed); err != nil {
			logger.Info(logkeys.Message, "encoding json to body", logkeys.Error, err)
		}
	}
}

// GetItemsHandler returns an HTTP handler that lists the items held for a category.
func GetItemsHandler(store ItemStore, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := ctxlog.Logger(r.Context(), logger)
		name := param(r, "category")
		if name == "" {
			logger.Info(logkeys.Message, "category parameter", logkeys.Error, ErrNoCategory)
			api.JSONError(w, ErrNoCategory, http.StatusBadRequest)
			return
		}

		logger = logger.With(logkeys.Category, name)
		c, err := inventory.ParseCategory(name)
		if err != nil {
			logger.Info(logkeys.Message, "parsing category", logkeys.Error, err)
			api.JSONError(w, err, http.StatusBadRequest)
			return
		}
		items, err := store.Items(r.Context(), c)
		if err != nil {
			logger.Info(logkeys.Message, "retrieving items", logkeys.Error, err)
			api.JSONError(w, err, statusCode(err))
			return
		}

		logger.Debug(logkeys.Message, "retrieved items", logkeys.GenericCount, len(items))
		if items == nil {
			items = []inventory.Item{}
		}
		if err = api.JSONResponse(w, items); err != nil {
			logger.Info(logkeys.Message, "encoding json to body", logkeys.Error, err)
		}
	}
}

// Product is a catalog entry in a vendor upload.
type Product struct {
	Code string `json:"code"`
	Item Item   `json:"item"`
}

// VendorUpload is the body of a vendor upload.
// Products are added in order so a repeated code keeps the last item.
type VendorUpload struct {
	Products []Product `json:"products"`
}

// PutVendorHandler returns an HTTP handler that registers a vendor and its catalog.
func PutVendorHandler(registry VendorRegistry, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := ctxlog.Logger(r.Context(), logger)
		name := param(r, "name")
		if name == "" {
			logger.Info(logkeys.Message, "name parameter", logkeys.Error, ErrNoName)
			api.JSONError(w, ErrNoName, http.StatusBadRequest)
			return
		}

		logger = logger.With(logkeys.VendorName, name)
		upload := new(VendorUpload)
		if err := json.NewDecoder(r.Body).Decode(upload); err != nil {
			logger.Info(logkeys.Message, "decoding body", logkeys.Error, err)
			api.JSONError(w, err, http.StatusBadRequest)
			return
		}

		v := catalog.NewVendor(name)
		for _, p := range upload.Products {
			item, err := p.Item.InventoryItem()
			if err != nil {
				logger.Info(logkeys.Message, "product item", logkeys.ProductCode, p.Code, logkeys.Error, err)
				api.JSONError(w, err, http.StatusBadRequest)
				return
			}
			v.AddProduct(p.Code, item)
		}
		if err := registry.AddVendor(r.Context(), v); err != nil {
			logger.Info(logkeys.Message, "adding vendor", logkeys.Error, err)
			api.JSONError(w, err, statusCode(err))
			return
		}

		logger.Debug(logkeys.Message, "added vendor", logkeys.GenericCount, v.Len())
		w.WriteHeader(http.StatusNoContent)
	}
}

// GetVendorHandler returns an HTTP handler that fetches a vendor.
func GetVendorHandler(registry VendorRegistry, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := ctxlog.Logger(r.Context(), logger)
		name := param(r, "name")
		if name == "" {
			logger.Info(logkeys.Message, "name parameter", logkeys.Error, ErrNoName)
			api.JSONError(w, ErrNoName, http.StatusBadRequest)
			return
		}

		logger = logger.With(logkeys.VendorName, name)
		v, err := registry.Vendor(r.Context(), name)
		if err != nil {
			logger.Info(logkeys.Message, "retrieving vendor", logkeys.Error, err)
			api.JSONError(w, err, statusCode(err))
			return
		}

		logger.Debug(logkeys.Message, "retrieved vendor", logkeys.GenericCount, v.Len())
		if err = api.JSONResponse(w, v); err != nil {
			logger.Info(logkeys.Message, "encoding json to body", logkeys.Error, err)
		}
	}
}

// SellHandler returns an HTTP handler that marks a product code sold.
func SellHandler(seller Seller, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := ctxlog.Logger(r.Context(), logger)
		code := param(r, "code")
		if code == "" {
			logger.Info(logkeys.Message, "code parameter", logkeys.Error, ErrNoCode)
			api.JSONError(w, ErrNoCode, http.StatusBadRequest)
			return
		}

		logger = logger.With(logkeys.ProductCode, code)
		if err := seller.SellItem(r.Context(), code); err != nil {
			logger.Info(logkeys.Message, "marking sold", logkeys.Error, err)
			api.JSONError(w, err, statusCode(err))
			return
		}

		logger.Debug(logkeys.Message, "marked sold")
		w.WriteHeader(http.StatusNoContent)
	}
}

// ReportHandler returns an HTTP handler that generates the sales report.
func ReportHandler(reporter Reporter, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := ctxlog.Logger(r.Context(), logger)
		lines, err := reporter.SalesReport(r.Context())
		if err != nil {
			logger.Info(logkeys.Message, "generating report", logkeys.Error, err)
			api.JSONError(w, err, statusCode(err))
			return
		}

		logger.Debug(logkeys.Message, "generated report", logkeys.GenericCount, len(lines))
		if err = api.JSONResponse(w, lines); err != nil {
			logger.Info(logkeys.Message, "encoding json to body", logkeys.Error, err)
		}
	}
}

// SoldHandler returns an HTTP handler that lists the sold product codes.
func SoldHandler(reporter Reporter, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := ctxlog.Logger(r.Context(), logger)
		codes, err := reporter.SoldCodes(r.Context())
		if err != nil {
			logger.Info(logkeys.Message, "listing sold codes", logkeys.Error, err)
			api.JSONError(w, err, statusCode(err))
			return
		}

		logger.Debug(logkeys.Message, "listed sold codes", logkeys.GenericCount, len(codes))
		if err = api.JSONResponse(w, codes); err != nil {
			logger.Info(logkeys.Message, "encoding json to body", logkeys.Error, err)
		}
	}
}
