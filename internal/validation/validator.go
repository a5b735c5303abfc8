// Package validation evaluates request rule tables (struct tags) and renders
// failures as field -> messages maps.
//
// Besides the go-playground built-ins it registers:
//
//	unique=table.column  value must not exist in table.column
//	exists=table.column  value must exist in table.column
//	filled               when present, value must not be blank
package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"crud-backend/internal/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Validator struct {
	db       *gorm.DB
	validate *validator.Validate
}

type queryErrKey struct{}

func New(db *gorm.DB) *Validator {
	v := &Validator{db: db, validate: validator.New()}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// decimal.Decimal numeric tag'lerle (gte, lte) çalışsın
	v.validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	v.validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if b, ok := field.Interface().(Bool); ok && b.set {
			return b.raw
		}
		return nil
	}, Bool{})

	mustRegister(v.validate.RegisterValidation("filled", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}))
	mustRegister(v.validate.RegisterValidationCtx("unique", v.uniqueRule))
	mustRegister(v.validate.RegisterValidationCtx("exists", v.existsRule))

	return v
}

func mustRegister(err error) {
	if err != nil {
		panic(err)
	}
}

// Struct runs the rule table of s. It returns nil, an *apierror.ValidationError,
// or the store error raised by a unique/exists lookup.
func (v *Validator) Struct(ctx context.Context, s any) error {
	var queryErr error
	ctx = context.WithValue(ctx, queryErrKey{}, &queryErr)

	err := v.validate.StructCtx(ctx, s)
	if queryErr != nil {
		return queryErr
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := apierror.NewValidation()
	for _, fe := range fieldErrs {
		out.Add(fe.Field(), Message(fe.Field(), fe.Tag(), fe.Param(), fe.Kind()))
	}
	return out
}

func (v *Validator) uniqueRule(ctx context.Context, fl validator.FieldLevel) bool {
	taken, err := Taken(ctx, v.db, fl.Param(), fl.Field().Interface(), 0)
	if err != nil {
		recordQueryErr(ctx, err)
		return true
	}
	return !taken
}

func (v *Validator) existsRule(ctx context.Context, fl validator.FieldLevel) bool {
	found, err := Taken(ctx, v.db, fl.Param(), fl.Field().Interface(), 0)
	if err != nil {
		recordQueryErr(ctx, err)
		return true
	}
	return found
}

func recordQueryErr(ctx context.Context, err error) {
	if slot, ok := ctx.Value(queryErrKey{}).(*error); ok && *slot == nil {
		*slot = err
	}
}

// Taken reports whether a row with ref ("table.column") = value exists,
// ignoring the row whose id is exceptID when exceptID is non-zero.
func Taken(ctx context.Context, db *gorm.DB, ref string, value any, exceptID uint) (bool, error) {
	table, column, ok := strings.Cut(ref, ".")
	if !ok || table == "" || column == "" {
		return false, fmt.Errorf("geçersiz kural parametresi: %q", ref)
	}

	q := db.WithContext(ctx).Table(table).Where(column+" = ?", value)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, fmt.Errorf("%s sorgulanamadı: %w", ref, err)
	}
	return n > 0, nil
}
