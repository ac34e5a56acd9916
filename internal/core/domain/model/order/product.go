package order

import (
	"fmt"
	"strings"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/pkg/errs"
	"garmenttrack/internal/pkg/guard"
)

// ErrProductSnapshotIsNotConstructed is returned when attempting to use an
// improperly initialized ProductSnapshot.
var ErrProductSnapshotIsNotConstructed = errs.NewValueIsRequiredError(
	"product snapshot must be created via NewProductSnapshot constructor")

// ProductSnapshot is the frozen view of a catalog product as it was when the
// order was placed: the captured unit price and minimum order quantity stay
// with the order even if the catalog changes later.
type ProductSnapshot struct { //nolint:recvcheck //using for validation
	id               kernel.UUID
	name             string
	category         string
	unitPrice        kernel.Money
	minOrderQuantity int
	images           []string

	guard guard.ConstructorGuard
}

// NewProductSnapshot creates a validated product snapshot.
// Name and category are required, the unit price must be a constructed Money
// value, and the minimum order quantity must be positive.
func NewProductSnapshot(
	id kernel.UUID,
	name string,
	category string,
	unitPrice kernel.Money,
	minOrderQuantity int,
	images []string,
) (ProductSnapshot, error) {
	if err := id.Validate(); err != nil {
		return ProductSnapshot{}, err
	}
	if strings.TrimSpace(name) == "" {
		return ProductSnapshot{}, errs.NewValueIsRequiredError("product name")
	}
	if strings.TrimSpace(category) == "" {
		return ProductSnapshot{}, errs.NewValueIsRequiredError("product category")
	}
	if err := unitPrice.Validate(); err != nil {
		return ProductSnapshot{}, err
	}
	if minOrderQuantity <= 0 {
		return ProductSnapshot{}, errs.NewValueIsInvalidErrorWithCause("minimum order quantity",
			fmt.Errorf("%d is not greater than 0", minOrderQuantity))
	}

	copied := make([]string, len(images))
	copy(copied, images)

	return ProductSnapshot{
		id:               id,
		name:             name,
		category:         category,
		unitPrice:        unitPrice,
		minOrderQuantity: minOrderQuantity,
		images:           copied,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the snapshot was created through NewProductSnapshot.
func (p ProductSnapshot) Validate() error {
	return p.guard.Validate(ErrProductSnapshotIsNotConstructed)
}

// ID returns the catalog product id the snapshot was taken from.
func (p ProductSnapshot) ID() kernel.UUID {
	return p.id
}

// Name returns the product name as captured at order time.
func (p ProductSnapshot) Name() string {
	return p.name
}

// Category returns the product category as captured at order time.
func (p ProductSnapshot) Category() string {
	return p.category
}

// UnitPrice returns the per-unit price captured at order time.
// Order pricing uses this value, never the live catalog price.
func (p ProductSnapshot) UnitPrice() kernel.Money {
	return p.unitPrice
}

// MinOrderQuantity returns the MOQ in force when the order was placed.
func (p ProductSnapshot) MinOrderQuantity() int {
	return p.minOrderQuantity
}

// Images returns a copy of the product image URLs.
func (p ProductSnapshot) Images() []string {
	out := make([]string, len(p.images))
	copy(out, p.images)
	return out
}
