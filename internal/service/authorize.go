package service

import (
	"canteen/internal/errors"
	"canteen/internal/model"
)

// requireAdmin is the first statement of every admin operation.
func requireAdmin(actor *model.User) error {
	if actor == nil || !actor.IsAdmin {
		return errors.ErrForbidden
	}
	return nil
}
