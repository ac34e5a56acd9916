package order

import (
	"fmt"
	"strings"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/pkg/errs"
	"garmenttrack/internal/pkg/guard"
)

// ErrBuyerIsNotConstructed is returned when attempting to use an improperly
// initialized Buyer. Buyers must be created via NewBuyer.
var ErrBuyerIsNotConstructed = errs.NewValueIsRequiredError(
	"buyer must be created via NewBuyer constructor")

// Buyer is the snapshot of the buyer's contact and delivery information taken
// at order time. It is immutable after creation: later edits to the buyer's
// profile never flow back into already placed orders.
type Buyer struct { //nolint:recvcheck //using for validation
	id      kernel.UUID
	name    string
	email   string
	phone   string
	address string
	notes   string

	guard guard.ConstructorGuard
}

// NewBuyer creates a validated buyer snapshot.
// Name, email, phone and address are required; notes are optional.
// The email must at least contain a local part and a domain.
func NewBuyer(id kernel.UUID, name, email, phone, address, notes string) (Buyer, error) {
	if err := id.Validate(); err != nil {
		return Buyer{}, err
	}
	if strings.TrimSpace(name) == "" {
		return Buyer{}, errs.NewValueIsRequiredError("buyer name")
	}
	if strings.TrimSpace(email) == "" {
		return Buyer{}, errs.NewValueIsRequiredError("buyer email")
	}
	if at := strings.Index(email, "@"); at <= 0 || at == len(email)-1 {
		return Buyer{}, errs.NewValueIsInvalidErrorWithCause("buyer email",
			fmt.Errorf("%q is not an email address", email))
	}
	if strings.TrimSpace(phone) == "" {
		return Buyer{}, errs.NewValueIsRequiredError("buyer phone")
	}
	if strings.TrimSpace(address) == "" {
		return Buyer{}, errs.NewValueIsRequiredError("buyer address")
	}

	return Buyer{
		id:      id,
		name:    name,
		email:   email,
		phone:   phone,
		address: address,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the buyer snapshot was created through NewBuyer.
func (b Buyer) Validate() error {
	return b.guard.Validate(ErrBuyerIsNotConstructed)
}

// ID returns the buyer's account id. Used for ownership checks on cancel.
func (b Buyer) ID() kernel.UUID {
	return b.id
}

// Name returns the buyer's display name as captured at order time.
func (b Buyer) Name() string {
	return b.name
}

// Email returns the buyer's contact email as captured at order time.
func (b Buyer) Email() string {
	return b.email
}

// Phone returns the buyer's contact phone as captured at order time.
func (b Buyer) Phone() string {
	return b.phone
}

// Address returns the delivery address as captured at order time.
func (b Buyer) Address() string {
	return b.address
}

// Notes returns the optional delivery notes.
func (b Buyer) Notes() string {
	return b.notes
}
