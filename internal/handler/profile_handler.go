package handler

import (
	stderrors "errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"canteen/internal/errors"
	"canteen/internal/service"
	"canteen/internal/session"
	"canteen/internal/view"
)

const profilePath = "/profile"

// ProfileHandler serves the logged-in user's profile pages.
type ProfileHandler struct {
	layout *Layout
	users  service.UserService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(layout *Layout, users service.UserService) *ProfileHandler {
	return &ProfileHandler{layout: layout, users: users}
}

// ProfileForm carries the editable contact details.
type ProfileForm struct {
	Email   string `form:"email" validate:"omitempty,email,max=120"`
	Address string `form:"address" validate:"max=200"`
	Phone   string `form:"phone" validate:"max=20"`
}

// ChangePasswordForm carries a password change.
type ChangePasswordForm struct {
	OldPassword string `form:"old_password"`
	NewPassword string `form:"new_password"`
}

// PaymentMethodForm carries card details; they are acknowledged, never stored.
type PaymentMethodForm struct {
	CardNumber string `form:"card_number"`
	ExpiryDate string `form:"expiry_date"`
}

// Show godoc
// @Summary Profile page
// @Tags profile
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /profile [get]
func (h *ProfileHandler) Show(c echo.Context) error {
	return h.layout.Render(c, view.PageProfile, nil)
}

// Update godoc
// @Summary Update email, address and phone
// @Tags profile
// @Accept x-www-form-urlencoded
// @Param email formData string false "Email"
// @Param address formData string false "Address"
// @Param phone formData string false "Phone"
// @Success 303 "Redirect to /profile"
// @Router /profile [post]
func (h *ProfileHandler) Update(c echo.Context) error {
	var form ProfileForm
	if err := c.Bind(&form); err != nil || c.Validate(&form) != nil {
		return flashRedirect(c, session.FlashDanger, "Please check the entered details.", profilePath)
	}

	if _, err := h.users.UpdateProfile(c.Request().Context(), CurrentUser(c), form.Address, form.Phone, form.Email); err != nil {
		if stderrors.Is(err, errors.ErrEmailTaken) {
			return flashRedirect(c, session.FlashDanger, "This email is already taken.", profilePath)
		}
		return httpError(err)
	}
	return flashRedirect(c, session.FlashSuccess, "Personal information updated!", profilePath)
}

// ChangePassword godoc
// @Summary Change the account password
// @Tags profile
// @Accept x-www-form-urlencoded
// @Param old_password formData string true "Current password"
// @Param new_password formData string true "New password, at least 6 characters"
// @Success 303 "Redirect to /profile"
// @Router /profile/change_password [post]
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	var form ChangePasswordForm
	if err := c.Bind(&form); err != nil {
		return flashRedirect(c, session.FlashDanger, "Invalid password form.", profilePath)
	}

	err := h.users.ChangePassword(c.Request().Context(), CurrentUser(c), form.OldPassword, form.NewPassword)
	switch {
	case err == nil:
		return flashRedirect(c, session.FlashSuccess, "Password changed successfully!", profilePath)
	case stderrors.Is(err, errors.ErrInvalidCredentials):
		return flashRedirect(c, session.FlashDanger, "The old password is incorrect.", profilePath)
	case errors.IsValidation(err):
		return flashRedirect(c, session.FlashDanger, validationMessage(err), profilePath)
	default:
		return httpError(err)
	}
}

// PaymentMethods godoc
// @Summary Register a payment card
// @Tags profile
// @Accept x-www-form-urlencoded
// @Param card_number formData string true "Card number"
// @Param expiry_date formData string true "Expiry date"
// @Success 303 "Redirect to /profile"
// @Router /profile/payment_methods [post]
func (h *ProfileHandler) PaymentMethods(c echo.Context) error {
	var form PaymentMethodForm
	if err := c.Bind(&form); err != nil {
		return flashRedirect(c, session.FlashDanger, validationMessage(errors.ErrPaymentMethodIncomplete), profilePath)
	}

	last4, err := h.users.AddPaymentMethod(c.Request().Context(), CurrentUser(c), form.CardNumber, form.ExpiryDate)
	switch {
	case err == nil:
		return flashRedirect(c, session.FlashSuccess, fmt.Sprintf("Payment method (card ending in **%s) added!", last4), profilePath)
	case errors.IsValidation(err):
		return flashRedirect(c, session.FlashDanger, validationMessage(err), profilePath)
	default:
		return httpError(err)
	}
}
