package application

import (
	"errors"

	"gorm.io/gorm"

	"github.com/paulamunoz06/gestionproyectos/pkg/apperrors"
)

// lookupErr classifies a repository read error: a missing row becomes
// EntityNotFound, anything else is internal.
func lookupErr(err error, entity, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(entity, id)
	}
	return storeErr(err)
}

// insertErr classifies a create error: a unique-key violation that slipped
// past the existence check becomes DuplicateEntity.
func insertErr(err error, entity, id string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.DuplicateEntity(entity, id)
	}
	return storeErr(err)
}

// storeErr passes classified errors through and wraps the rest as internal.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Internal("storage failure", err)
}
