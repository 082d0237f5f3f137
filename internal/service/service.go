// Package service holds the per-entity business operations. Services log
// failures and return them unchanged; lookups that miss are reported as
// apperror.NotFound.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"agro-registry/internal/apperror"
	"agro-registry/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const cropCycleTargetMessage = "Either fieldId or propertyId must be provided"

type existenceChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// translate maps repository errors onto domain errors
func translate(err error, entity string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.NotFound(entity)
	case errors.Is(err, model.ErrCropCycleTarget):
		return apperror.BadRequest(cropCycleTargetMessage)
	default:
		return err
	}
}

// fail logs err at a level matching its kind and returns it
func fail(logger *slog.Logger, msg string, err error, args ...any) error {
	args = append(args, "error", err.Error())
	if _, ok := apperror.As(err); ok {
		logger.Warn(msg, args...)
	} else {
		logger.Error(msg, args...)
	}
	return err
}

// requireExists reports a reference to a missing parent record as BadRequest
func requireExists(ctx context.Context, logger *slog.Logger, repo existenceChecker, entity string, id uuid.UUID) error {
	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return fail(logger, "failed to check existence", err, "entity", entity, "id", id)
	}
	if !exists {
		return fail(logger, "referenced record missing",
			apperror.BadRequest(fmt.Sprintf("%s with ID %s does not exist", entity, id)),
			"entity", entity, "id", id)
	}
	return nil
}
