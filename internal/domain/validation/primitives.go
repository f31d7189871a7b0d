// Package validation provides the reusable assertions every entity validator is built from.
// Primitives are pure: they take values, never store handles, and return a
// *domainerror.ValidationError naming the field and the violated constraint.
package validation

import (
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/goal-tracker/backend/internal/domain/error"
)

// Field is one named entry of an "any of" group.
type Field struct {
	Name   string
	filled bool
}

// Text builds a Field that is filled when value is non-blank.
func Text(value *string, name string) Field {
	return Field{Name: name, filled: !isBlank(value)}
}

// Filled builds a Field from an already-evaluated presence check, for
// collections and other non-text members of a group.
func Filled(ok bool, name string) Field {
	return Field{Name: name, filled: ok}
}

// RequireNonEmpty fails if value is nil or blank after trimming whitespace.
func RequireNonEmpty(value *string, field string) error {
	if isBlank(value) {
		return domainerror.NewValidationError(domainerror.ErrContentEmpty, field, "is required")
	}
	return nil
}

// RequireAnyNonEmpty fails only when every field of the group is empty.
func RequireAnyNonEmpty(fields ...Field) error {
	names := make([]string, len(fields))
	for i, f := range fields {
		if f.filled {
			return nil
		}
		names[i] = f.Name
	}
	return domainerror.NewValidationError(
		domainerror.ErrContentEmpty,
		strings.Join(names, "/"),
		"at least one of "+joinNames(names)+" is required",
	)
}

// Range is a closed or lower-bounded interval over an ordered type.
type Range[T any] struct {
	min          T
	max          T
	hasMax       bool
	exclusiveMin bool
	compare      func(a, b T) int
}

// Closed returns the range [min, max].
func Closed[T cmp.Ordered](min, max T) Range[T] {
	return Range[T]{min: min, max: max, hasMax: true, compare: cmp.Compare[T]}
}

// AtLeast returns the range [min, +inf).
func AtLeast[T cmp.Ordered](min T) Range[T] {
	return Range[T]{min: min, compare: cmp.Compare[T]}
}

// GreaterThan returns the range (min, +inf).
func GreaterThan[T cmp.Ordered](min T) Range[T] {
	return Range[T]{min: min, exclusiveMin: true, compare: cmp.Compare[T]}
}

// DecimalAtLeast returns the range [min, +inf) over decimals.
func DecimalAtLeast(min decimal.Decimal) Range[decimal.Decimal] {
	return Range[decimal.Decimal]{min: min, compare: compareDecimal}
}

// DecimalGreaterThan returns the range (min, +inf) over decimals.
func DecimalGreaterThan(min decimal.Decimal) Range[decimal.Decimal] {
	return Range[decimal.Decimal]{min: min, exclusiveMin: true, compare: compareDecimal}
}

// Contains reports whether v lies inside the range.
func (r Range[T]) Contains(v T) bool {
	c := r.compare(v, r.min)
	if c < 0 || (c == 0 && r.exclusiveMin) {
		return false
	}
	if r.hasMax && r.compare(v, r.max) > 0 {
		return false
	}
	return true
}

// String describes the range in plain language.
func (r Range[T]) String() string {
	switch {
	case r.hasMax:
		return fmt.Sprintf("between %v and %v", r.min, r.max)
	case r.exclusiveMin:
		return fmt.Sprintf("greater than %v", r.min)
	default:
		return fmt.Sprintf("at least %v", r.min)
	}
}

// RequireInRange fails if value lies outside r.
func RequireInRange[T any](value T, r Range[T], field string) error {
	if !r.Contains(value) {
		return domainerror.NewValidationError(domainerror.ErrRangeViolation, field, "must be "+r.String())
	}
	return nil
}

// RequireOptionalInRange checks value against r when it is present.
func RequireOptionalInRange[T any](value *T, r Range[T], field string) error {
	if value == nil {
		return nil
	}
	return RequireInRange(*value, r, field)
}

// RequireEachInRange checks the accessed field of every item against r.
func RequireEachInRange[E, T any](items []E, accessor func(E) T, r Range[T], itemsName, fieldName string) error {
	for i, item := range items {
		if err := RequireInRange(accessor(item), r, itemField(itemsName, i, fieldName)); err != nil {
			return err
		}
	}
	return nil
}

// RequireEachOptionalInRange is RequireEachInRange for optional fields; absent values pass.
func RequireEachOptionalInRange[E, T any](items []E, accessor func(E) *T, r Range[T], itemsName, fieldName string) error {
	for i, item := range items {
		if err := RequireOptionalInRange(accessor(item), r, itemField(itemsName, i, fieldName)); err != nil {
			return err
		}
	}
	return nil
}

// RequireEqual fails if a and b differ. Used to check a child row's parent id.
func RequireEqual[T comparable](a, b T, nameA, nameB string) error {
	if a != b {
		return domainerror.NewValidationError(
			domainerror.ErrInconsistentReference,
			nameA,
			"does not match "+nameB,
		)
	}
	return nil
}

// RequireMatchAll fails if any item's accessed field differs from expected.
func RequireMatchAll[E any, T comparable](items []E, expected T, accessor func(E) T, itemsName, fieldName string) error {
	for i, item := range items {
		if accessor(item) != expected {
			return domainerror.NewValidationError(
				domainerror.ErrInconsistentReference,
				itemField(itemsName, i, fieldName),
				"does not belong to this record",
			)
		}
	}
	return nil
}

// RequireUnique fails if two items share the accessed field's value.
func RequireUnique[E any, K comparable](items []E, accessor func(E) K, itemsName, fieldName string) error {
	seen := make(map[K]int, len(items))
	for i, item := range items {
		key := accessor(item)
		if first, ok := seen[key]; ok {
			return domainerror.NewValidationError(
				domainerror.ErrDuplicateRecord,
				itemField(itemsName, i, fieldName),
				fmt.Sprintf("repeats entry %d; each %s may appear only once", first+1, fieldName),
			)
		}
		seen[key] = i
	}
	return nil
}

// RequireNotFuture fails if t is after now. A nil t passes.
func RequireNotFuture(t *time.Time, now time.Time, field string) error {
	if t != nil && t.After(now) {
		return domainerror.NewValidationError(domainerror.ErrDateRangeInvalid, field, "must not be in the future")
	}
	return nil
}

// RequireOrdered fails if start comes after end, or equals it when allowEqual is false.
// The check is skipped when either date is absent.
func RequireOrdered(start, end *time.Time, startName, endName string, allowEqual bool) error {
	if start == nil || end == nil {
		return nil
	}
	if start.After(*end) {
		return domainerror.NewValidationError(domainerror.ErrDateRangeInvalid, startName, "must not be after "+endName)
	}
	if !allowEqual && start.Equal(*end) {
		return domainerror.NewValidationError(domainerror.ErrDateRangeInvalid, startName, "must be before "+endName)
	}
	return nil
}

// RequirePresent fails if a structurally required, non-text value is absent.
func RequirePresent[T any](value *T, field string) error {
	if value == nil {
		return domainerror.NewValidationError(domainerror.ErrMissingRequiredField, field, "is required")
	}
	return nil
}

// RequireNonZero fails if value is its type's zero value, such as an unset uuid.
func RequireNonZero[T comparable](value T, field string) error {
	var zero T
	if value == zero {
		return domainerror.NewValidationError(domainerror.ErrMissingRequiredField, field, "is required")
	}
	return nil
}

// RequireEachNonZero applies RequireNonZero to the accessed field of every item.
func RequireEachNonZero[E any, T comparable](items []E, accessor func(E) T, itemsName, fieldName string) error {
	for i, item := range items {
		if err := RequireNonZero(accessor(item), itemField(itemsName, i, fieldName)); err != nil {
			return err
		}
	}
	return nil
}

// First returns the first non-nil error. Validators use it to run checks in order.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func isBlank(value *string) bool {
	return value == nil || strings.TrimSpace(*value) == ""
}

func itemField(itemsName string, index int, fieldName string) string {
	return fmt.Sprintf("%s %d %s", itemsName, index+1, fieldName)
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
	}
}

func compareDecimal(a, b decimal.Decimal) int {
	return a.Cmp(b)
}
