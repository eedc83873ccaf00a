package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"canteen/internal/service"
)

// QueueStream upgrades a request into a live feed of queue events.
type QueueStream interface {
	ServeWS(w http.ResponseWriter, r *http.Request) error
}

// APIHandler exposes the read-only JSON API and the live queue feed.
type APIHandler struct {
	menu   service.MenuService
	queue  service.QueueService
	stream QueueStream
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(menu service.MenuService, queue service.QueueService, stream QueueStream) *APIHandler {
	return &APIHandler{menu: menu, queue: queue, stream: stream}
}

// MenuItemResponse represents one menu item.
type MenuItemResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// QueueEntryResponse represents one waiting customer.
type QueueEntryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// ListMenu godoc
// @Summary List the menu
// @Tags api
// @Produce json
// @Success 200 {array} MenuItemResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/menu [get]
func (h *APIHandler) ListMenu(c echo.Context) error {
	items, err := h.menu.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	resp := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, MenuItemResponse{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price.StringFixed(2),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// ListQueue godoc
// @Summary List waiting customers in serving order
// @Tags api
// @Produce json
// @Success 200 {array} QueueEntryResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/queue [get]
func (h *APIHandler) ListQueue(c echo.Context) error {
	entries, err := h.queue.Waiting(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	resp := make([]QueueEntryResponse, 0, len(entries))
	for i, entry := range entries {
		resp = append(resp, QueueEntryResponse{
			ID:        entry.ID,
			Name:      entry.DisplayName(),
			Position:  i + 1,
			CreatedAt: entry.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// QueueSocket godoc
// @Summary Websocket stream of queue events
// @Tags api
// @Success 101 "Switching protocols"
// @Router /ws/queue [get]
func (h *APIHandler) QueueSocket(c echo.Context) error {
	if err := h.stream.ServeWS(c.Response(), c.Request()); err != nil {
		c.Logger().Warnf("queue socket: %v", err)
	}
	return nil
}
