package http

import (
	"net/http"

	"github.com/micromdm/nanolib/log"
)

// Mux can register HTTP handlers.
// Ostensibly this supports flow router.
type Mux interface {
	// Handle registers the handler for the given pattern.
	Handle(pattern string, handler http.Handler, methods ...string)
}

// Shop is everything the v1 API needs from a shop.
type Shop interface {
	ItemStore
	VendorRegistry
	Seller
	Reporter
}

// HandleAPIv1 registers the various API handlers into mux.
// API endpoint paths are prepended with prefix.
// Authentication or any other layered handlers are not present.
// They are assumed to be layered with mux, possibly at the Handle call.
// The logger is adorned with a "handler" key of the endpoint name.
func HandleAPIv1(prefix string, mux Mux, logger log.Logger, s Shop) {
	mux.Handle(
		prefix+"/items",
		AddItemHandler(s, logger.With("handler", "add item")),
		"POST",
	)

	mux.Handle(
		prefix+"/items/remove",
		RemoveItemHandler(s, logger.With("handler", "remove item")),
		"POST",
	)

	mux.Handle(
		prefix+"/items/:category",
		GetItemsHandler(s, logger.With("handler", "get items")),
		"GET",
	)

	mux.Handle(
		prefix+"/vendor/:name",
		PutVendorHandler(s, logger.With("handler", "put vendor")),
		"PUT",
	)

	mux.Handle(
		prefix+"/vendor/:name",
		GetVendorHandler(s, logger.With("handler", "get vendor")),
		"GET",
	)

	mux.Handle(
		prefix+"/sold/:code",
		SellHandler(s, logger.With("handler", "sell")),
		"POST",
	)

	mux.Handle(
		prefix+"/sold",
		SoldHandler(s, logger.With("handler", "sold")),
		"GET",
	)

	mux.Handle(
		prefix+"/report",
		ReportHandler(s, logger.With("handler", "report")),
		"GET",
	)
}
