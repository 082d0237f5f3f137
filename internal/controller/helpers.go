package controller

import (
	"errors"
	"reflect"
	"strings"

	"agro-registry/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

func init() {
	// report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// bindJSON decodes the request body into req. On failure the error is
// attached to the context and false is returned.
func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		_ = ctx.Error(apperror.BadRequest("Invalid JSON: " + err.Error()))
		return false
	}
	return true
}

// validateRequest runs the validator tags on req
func validateRequest(ctx *gin.Context, req any) bool {
	err := validate.Struct(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		_ = ctx.Error(apperror.BadRequest(err.Error()))
		return false
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	_ = ctx.Error(apperror.Validation(fields))
	return false
}

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false when the handler should return without writing a response.
func bindAndValidate(ctx *gin.Context, req any) bool {
	return bindJSON(ctx, req) && validateRequest(ctx, req)
}

// parseID parses the :id path parameter
func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	return parseUUIDParam(ctx, "id", ctx.Param("id"))
}

func parseUUIDParam(ctx *gin.Context, name, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		_ = ctx.Error(apperror.BadRequest("Invalid " + name + ": must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}
