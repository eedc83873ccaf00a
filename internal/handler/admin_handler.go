package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"canteen/internal/errors"
	"canteen/internal/model"
	"canteen/internal/service"
	"canteen/internal/session"
	"canteen/internal/view"
)

const (
	adminPath = "/admin"
	xlsxMIME  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// AdminHandler serves the staff panel: menu editing and the serving queue.
type AdminHandler struct {
	layout *Layout
	menu   service.MenuService
	queue  service.QueueService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(layout *Layout, menu service.MenuService, queue service.QueueService) *AdminHandler {
	return &AdminHandler{layout: layout, menu: menu, queue: queue}
}

// MenuItemForm is the body of the add and edit item forms. Both fields stay
// raw strings; the menu service owns their validation.
type MenuItemForm struct {
	Name  string `form:"name"`
	Price string `form:"price"`
}

type panelData struct {
	Menu    []model.MenuItem
	Waiting []model.QueueEntry
	Done    []model.QueueEntry
}

// Panel godoc
// @Summary Admin panel with menu, waiting queue and recently served
// @Tags admin
// @Produce html
// @Success 200 {string} string "HTML page"
// @Success 303 "Redirect to / for non-admins"
// @Router /admin [get]
func (h *AdminHandler) Panel(c echo.Context) error {
	ctx := c.Request().Context()
	menu, err := h.menu.List(ctx)
	if err != nil {
		return httpError(err)
	}
	waiting, err := h.queue.Waiting(ctx)
	if err != nil {
		return httpError(err)
	}
	done, err := h.queue.Done(ctx)
	if err != nil {
		return httpError(err)
	}
	return h.layout.Render(c, view.PageAdmin, panelData{Menu: menu, Waiting: waiting, Done: done})
}

// AddItem godoc
// @Summary Add a menu item
// @Tags admin
// @Accept x-www-form-urlencoded
// @Param name formData string true "Item name"
// @Param price formData string true "Price"
// @Success 303 "Redirect to /admin"
// @Router /admin/add [post]
func (h *AdminHandler) AddItem(c echo.Context) error {
	var form MenuItemForm
	if err := c.Bind(&form); err != nil {
		return flashRedirect(c, session.FlashDanger, "Name and price must be provided.", adminPath)
	}
	item, err := h.menu.Create(c.Request().Context(), CurrentUser(c), form.Name, form.Price)
	if err != nil {
		return handleAdminError(c, err, adminPath)
	}
	return flashRedirect(c, session.FlashSuccess, fmt.Sprintf("Item %q added!", item.Name), adminPath)
}

// EditItem godoc
// @Summary Rename or reprice a menu item
// @Tags admin
// @Accept x-www-form-urlencoded
// @Param item_id path int true "Menu item ID"
// @Param name formData string true "Item name"
// @Param price formData string true "Price"
// @Success 303 "Redirect to /admin"
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/edit/{item_id} [post]
func (h *AdminHandler) EditItem(c echo.Context) error {
	id, err := pathID(c, "item_id", errors.ErrMenuItemNotFound)
	if err != nil {
		return err
	}
	var form MenuItemForm
	if err := c.Bind(&form); err != nil {
		return flashRedirect(c, session.FlashDanger, "Name and price cannot be empty.", adminPath)
	}
	item, err := h.menu.Update(c.Request().Context(), CurrentUser(c), id, form.Name, form.Price)
	if err != nil {
		return handleAdminError(c, err, adminPath)
	}
	return flashRedirect(c, session.FlashSuccess, fmt.Sprintf("Item %q updated.", item.Name), adminPath)
}

// DeleteItem godoc
// @Summary Delete a menu item
// @Tags admin
// @Param item_id path int true "Menu item ID"
// @Success 303 "Redirect to /admin"
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/delete/{item_id} [post]
func (h *AdminHandler) DeleteItem(c echo.Context) error {
	id, err := pathID(c, "item_id", errors.ErrMenuItemNotFound)
	if err != nil {
		return err
	}
	item, err := h.menu.Delete(c.Request().Context(), CurrentUser(c), id)
	if err != nil {
		return handleAdminError(c, err, adminPath)
	}
	return flashRedirect(c, session.FlashWarning, fmt.Sprintf("Item %q deleted.", item.Name), adminPath)
}

// ExportMenu godoc
// @Summary Download the menu as an Excel workbook
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /admin/menu/export [get]
func (h *AdminHandler) ExportMenu(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.menu.Export(c.Request().Context(), CurrentUser(c), &buf); err != nil {
		return handleAdminError(c, err, adminPath)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="menu.xlsx"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

// QueueDone godoc
// @Summary Mark a queue entry as served
// @Tags admin
// @Param entry_id path int true "Queue entry ID"
// @Success 303 "Redirect to /admin"
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/queue/{entry_id}/done [post]
func (h *AdminHandler) QueueDone(c echo.Context) error {
	return h.transition(c, h.queue.MarkDone, session.FlashSuccess, "Customer #%d marked as served.")
}

// QueueRestore godoc
// @Summary Return a served entry to the waiting queue
// @Tags admin
// @Param entry_id path int true "Queue entry ID"
// @Success 303 "Redirect to /admin"
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/queue/{entry_id}/restore [post]
func (h *AdminHandler) QueueRestore(c echo.Context) error {
	return h.transition(c, h.queue.Restore, session.FlashInfo, "Customer #%d returned to the queue.")
}

// QueueDelete godoc
// @Summary Remove a queue entry
// @Tags admin
// @Param entry_id path int true "Queue entry ID"
// @Success 303 "Redirect to /admin"
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/queue/{entry_id}/delete [post]
func (h *AdminHandler) QueueDelete(c echo.Context) error {
	return h.transition(c, h.queue.Delete, session.FlashWarning, "Entry #%d removed from the queue.")
}

type queueOp func(ctx context.Context, actor *model.User, id uint) (*model.QueueEntry, error)

func (h *AdminHandler) transition(c echo.Context, op queueOp, category, format string) error {
	id, err := pathID(c, "entry_id", errors.ErrQueueEntryNotFound)
	if err != nil {
		return err
	}
	entry, err := op(c.Request().Context(), CurrentUser(c), id)
	if err != nil {
		return handleAdminError(c, err, adminPath)
	}
	return flashRedirect(c, category, fmt.Sprintf(format, entry.ID), adminPath)
}
