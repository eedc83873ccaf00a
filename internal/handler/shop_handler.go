package handler

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"canteen/internal/errors"
	"canteen/internal/model"
	"canteen/internal/service"
	"canteen/internal/session"
	"canteen/internal/view"
)

// ShopHandler serves the customer pages: menu, cart and checkout.
type ShopHandler struct {
	layout   *Layout
	menu     service.MenuService
	carts    service.CartService
	checkout service.CheckoutService
	queue    service.QueueService
}

// NewShopHandler creates a new shop handler.
func NewShopHandler(layout *Layout, menu service.MenuService, carts service.CartService, checkout service.CheckoutService, queue service.QueueService) *ShopHandler {
	return &ShopHandler{layout: layout, menu: menu, carts: carts, checkout: checkout, queue: queue}
}

// AddToCartForm is the body of an add-to-cart submission.
type AddToCartForm struct {
	Quantity string `form:"quantity"`
}

// PayForm is the body of a checkout submission.
type PayForm struct {
	Name string `form:"name" validate:"max=100"`
}

type indexData struct {
	Menu  []model.MenuItem
	Queue []model.QueueEntry
}

type successData struct {
	Entry    *model.QueueEntry
	Position int
}

// Index godoc
// @Summary Menu and waiting queue
// @Tags shop
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *ShopHandler) Index(c echo.Context) error {
	ctx := c.Request().Context()
	menu, err := h.menu.List(ctx)
	if err != nil {
		return httpError(err)
	}
	waiting, err := h.queue.Waiting(ctx)
	if err != nil {
		return httpError(err)
	}
	return h.layout.Render(c, view.PageIndex, indexData{Menu: menu, Queue: waiting})
}

// AddToCart godoc
// @Summary Add a menu item to the cart
// @Tags shop
// @Accept x-www-form-urlencoded
// @Param item_id path int true "Menu item ID"
// @Param quantity formData int false "Quantity, defaults to 1"
// @Success 303 "Redirect to /"
// @Router /add_to_cart/{item_id} [post]
func (h *ShopHandler) AddToCart(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("item_id"), 10, 0)
	if err != nil {
		return flashRedirect(c, session.FlashDanger, "This item cannot be added to the cart!", "/")
	}
	var form AddToCartForm
	if err := c.Bind(&form); err != nil {
		return flashRedirect(c, session.FlashDanger, "Invalid quantity.", "/")
	}

	item, quantity, err := h.carts.Add(c.Request().Context(), session.From(c), uint(id), form.Quantity)
	switch {
	case err == nil:
		return flashRedirect(c, session.FlashSuccess, fmt.Sprintf("%q (%d pcs) added to the cart!", item.Name, quantity), "/")
	case stderrors.Is(err, errors.ErrInvalidQuantity):
		return flashRedirect(c, session.FlashDanger, "Invalid quantity.", "/")
	case stderrors.Is(err, errors.ErrMenuItemNotFound):
		return flashRedirect(c, session.FlashDanger, "This item cannot be added to the cart!", "/")
	default:
		return httpError(err)
	}
}

// ViewCart godoc
// @Summary Cart contents with current prices
// @Tags shop
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /cart [get]
func (h *ShopHandler) ViewCart(c echo.Context) error {
	cart, err := h.carts.View(c.Request().Context(), session.From(c))
	if err != nil {
		return httpError(err)
	}
	return h.layout.Render(c, view.PageCart, cart)
}

// ClearCart godoc
// @Summary Empty the cart
// @Tags shop
// @Success 303 "Redirect to /cart"
// @Router /clear_cart [post]
func (h *ShopHandler) ClearCart(c echo.Context) error {
	h.carts.Clear(session.From(c))
	return flashRedirect(c, session.FlashWarning, "Cart cleared!", "/cart")
}

// Pay godoc
// @Summary Pay for the cart and join the queue
// @Tags shop
// @Accept x-www-form-urlencoded
// @Param name formData string false "Name to call out"
// @Success 303 "Redirect to /success"
// @Failure 500 {object} errors.ErrorResponse
// @Router /pay [post]
func (h *ShopHandler) Pay(c echo.Context) error {
	var form PayForm
	if err := c.Bind(&form); err != nil {
		return flashRedirect(c, session.FlashDanger, "Invalid order form.", "/cart")
	}
	if err := c.Validate(&form); err != nil {
		return flashRedirect(c, session.FlashDanger, "The name is too long.", "/cart")
	}

	admission, err := h.checkout.Checkout(c.Request().Context(), session.From(c), form.Name)
	if err != nil {
		if stderrors.Is(err, errors.ErrPaymentDeclined) {
			return flashRedirect(c, session.FlashDanger, "Payment failed, please try again.", "/cart")
		}
		return httpError(err)
	}
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/success?entry_id=%d&pos=%d", admission.EntryID, admission.Position))
}

// Success godoc
// @Summary Order confirmation with queue number and position
// @Tags shop
// @Produce html
// @Param entry_id query int true "Queue entry ID"
// @Param pos query int false "Position at admission"
// @Success 200 {string} string "HTML page"
// @Router /success [get]
func (h *ShopHandler) Success(c echo.Context) error {
	var data successData
	if id, err := strconv.ParseUint(c.QueryParam("entry_id"), 10, 0); err == nil {
		entry, err := h.queue.Get(c.Request().Context(), uint(id))
		switch {
		case err == nil:
			data.Entry = entry
			data.Position, _ = strconv.Atoi(c.QueryParam("pos"))
		case !stderrors.Is(err, errors.ErrQueueEntryNotFound):
			return httpError(err)
		}
	}
	return h.layout.Render(c, view.PageSuccess, data)
}
