package order

import (
	"errors"
	"time"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// maxOrderQuantity caps a single order. The factory floor cannot take larger
// runs in one order; bigger deals are split commercially.
const maxOrderQuantity = 1_000_000

// Order represents a garment production order. It is the aggregate root that
// manages the order lifecycle from placement through the manager decision and,
// for approved orders, the accumulated production tracking history.
//
// Order maintains these invariants:
//   - Exactly one of Pending/Approved/Rejected/Cancelled holds at any time
//   - Transitions only exist out of Pending, and each fires at most once
//   - approvedAt is set exactly once, by the successful Approve call; likewise
//     cancelledAt for Cancel
//   - trackingUpdates is non-empty only while the order is Approved, and is
//     append-only: past updates are never edited or removed
//   - buyer and product snapshots, quantity and the captured price are
//     immutable after creation
//
// The aggregate performs no I/O and never blocks; persistence, notification
// and authorization happen around it in the application layer.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// code is the human-readable order code shown to buyers
	code kernel.OrderCode

	// buyer is the contact/delivery snapshot taken at order time
	buyer Buyer

	// product is the catalog snapshot with the captured unit price and MOQ
	product ProductSnapshot

	// quantity is the number of units ordered (>= product MOQ)
	quantity int

	// price is quantity x captured unit price, stored rather than recomputed
	price kernel.Money

	// paymentMethod is COD or PayFirst
	paymentMethod PaymentMethod

	// paymentStatus only advances for PayFirst orders
	paymentStatus PaymentStatus

	// status is the current lifecycle state
	status Status

	// createdAt is set once at placement
	createdAt time.Time

	// approvedAt / cancelledAt are set exactly once by their transitions
	approvedAt  *time.Time
	cancelledAt *time.Time

	// trackingUpdates is the append-only production history
	trackingUpdates []TrackingUpdate

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status. This is the only way to
// place an order, ensuring all business invariants hold from the start.
//
// Parameters:
//   - id: Unique identifier for the order
//   - code: Human-readable order code
//   - buyer: Contact/delivery snapshot (immutable afterwards)
//   - product: Catalog snapshot with captured unit price and MOQ
//   - quantity: Units ordered; must be within [product MOQ, maxOrderQuantity]
//   - paymentMethod: COD or PayFirst
//   - createdAt: Placement time
//
// The order price is captured here as quantity times the snapshot unit price
// and never recomputed from the live catalog.
func NewOrder(
	id kernel.UUID,
	code kernel.OrderCode,
	buyer Buyer,
	product ProductSnapshot,
	quantity int,
	paymentMethod PaymentMethod,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setBuyer(buyer),
		o.setProduct(product),
		o.setPaymentMethod(paymentMethod),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	// Quantity and price depend on the product snapshot being valid.
	if err := o.setQuantity(quantity); err != nil {
		return nil, err
	}

	price, err := product.UnitPrice().MultiplyBy(quantity)
	if err != nil {
		return nil, err
	}
	o.price = price

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, enforcing cross-field
// invariants that individual setters cannot see:
//   - tracking updates exist only on approved orders
//   - approvedAt is present if and only if the order is Approved
//   - cancelledAt is present if and only if the order is Cancelled
//
// Stored rows violating these rules indicate corrupted data and fail loudly.
func RestoreOrder(
	id kernel.UUID,
	code kernel.OrderCode,
	buyer Buyer,
	product ProductSnapshot,
	quantity int,
	price kernel.Money,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
	createdAt time.Time,
	approvedAt *time.Time,
	cancelledAt *time.Time,
	trackingUpdates []TrackingUpdate,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setBuyer(buyer),
		o.setProduct(product),
		o.setPaymentMethod(paymentMethod),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if err := o.setQuantity(quantity); err != nil {
		return nil, err
	}

	if err := price.Validate(); err != nil {
		return nil, err
	}
	o.price = price

	if err := paymentStatus.Validate(); err != nil {
		return nil, err
	}
	o.paymentStatus = paymentStatus

	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	if len(trackingUpdates) > 0 && status != Approved {
		return nil, errs.NewInvalidOrderStateError(id.String(), status.String(), "restoring tracking updates")
	}
	if (approvedAt != nil) != (status == Approved) {
		return nil, errs.NewValueIsInvalidError("approvedAt does not match order status")
	}
	if (cancelledAt != nil) != (status == Cancelled) {
		return nil, errs.NewValueIsInvalidError("cancelledAt does not match order status")
	}

	for _, u := range trackingUpdates {
		if err := u.Validate(); err != nil {
			return nil, err
		}
	}

	o.approvedAt = copyTime(approvedAt)
	o.cancelledAt = copyTime(cancelledAt)
	o.trackingUpdates = make([]TrackingUpdate, len(trackingUpdates))
	copy(o.trackingUpdates, trackingUpdates)

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Approve moves a pending order into production.
//
// Business rules:
//   - Only a Pending order may be approved
//   - approvedAt is set exactly once, to the supplied time
//
// A second Approve call on an already approved order fails with an
// InvalidTransitionError and leaves the record unchanged; it never silently
// succeeds, so racing callers see exactly one success.
func (o *Order) Approve(now time.Time) error {
	if err := o.ensureTransition(Approved); err != nil {
		return err
	}

	o.status = Approved
	at := now.UTC()
	o.approvedAt = &at
	return nil
}

// Reject declines a pending order. Mutually exclusive with Approve: whichever
// transition fires first wins and the other fails with InvalidTransitionError.
func (o *Order) Reject() error {
	if err := o.ensureTransition(Rejected); err != nil {
		return err
	}

	o.status = Rejected
	return nil
}

// Cancel withdraws a pending order on behalf of its buyer.
//
// Once an order is approved the buyer can no longer cancel it; attempting to
// cancel a non-pending order fails with InvalidTransitionError. Ownership
// (the actor being the order's buyer) is checked by the command handler,
// which receives the actor explicitly.
func (o *Order) Cancel(now time.Time) error {
	if err := o.ensureTransition(Cancelled); err != nil {
		return err
	}

	o.status = Cancelled
	at := now.UTC()
	o.cancelledAt = &at
	return nil
}

// MarkPaid records the external payment confirmation for a PayFirst order.
//
// Fails with InvalidOrderStateError when the order does not require online
// payment (COD), and with InvalidTransitionError when the payment was
// already recorded.
func (o *Order) MarkPaid() error {
	if !o.paymentMethod.RequiresOnlinePayment() {
		return errs.NewInvalidOrderStateError(o.id.String(), o.paymentMethod.String(), "payment confirmation")
	}
	if o.paymentStatus == PaymentPaid {
		return errs.NewInvalidTransitionError(o.id.String(), PaymentPaid.String(), PaymentPaid.String())
	}

	o.paymentStatus = PaymentPaid
	return nil
}

// AddTrackingUpdate appends a production tracking event to an approved order.
//
// Preconditions:
//   - the order is Approved (else InvalidOrderStateError)
//   - the update was constructed through NewTrackingUpdate, which already
//     guarantees a valid checkpoint, location and timestamp
//
// The history is append-only; existing entries are never edited or removed.
// Checkpoint regression is not rejected here; NextSuggestedUpdate gives the
// advisory forward path.
func (o *Order) AddTrackingUpdate(update TrackingUpdate) error {
	if err := update.Validate(); err != nil {
		return err
	}
	if o.status != Approved {
		return errs.NewInvalidOrderStateError(o.id.String(), o.status.String(), "tracking update")
	}

	o.trackingUpdates = append(o.trackingUpdates, update)
	return nil
}

// LatestTrackingUpdate returns the chronologically most recent update, by
// UpdatedAt rather than insertion order, since updates are not guaranteed to
// arrive in checkpoint order. Ties go to the later-appended entry.
// The second return value is false when the history is empty.
func (o *Order) LatestTrackingUpdate() (TrackingUpdate, bool) {
	if len(o.trackingUpdates) == 0 {
		return TrackingUpdate{}, false
	}

	latest := o.trackingUpdates[0]
	for _, u := range o.trackingUpdates[1:] {
		if !u.UpdatedAt().Before(latest.UpdatedAt()) {
			latest = u
		}
	}
	return latest, true
}

// NextSuggestedUpdate proposes a checkpoint and default location for the next
// tracking update. The suggestion pre-fills the manager's form and is advisory
// only: any sequence member remains submittable, including one out of forward
// order.
//
// Rules:
//   - empty history: suggest the first checkpoint with an empty location
//   - otherwise: suggest the successor of the latest checkpoint
//   - at Delivered: suggest Delivered again with the last recorded location
func (o *Order) NextSuggestedUpdate() (Checkpoint, string) {
	last, ok := o.LatestTrackingUpdate()
	if !ok {
		return CuttingCompleted, ""
	}

	if next, ok := last.Checkpoint().Next(); ok {
		return next, ""
	}
	return last.Checkpoint(), last.Location()
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the human-readable order code.
func (o *Order) Code() kernel.OrderCode {
	return o.code
}

// Buyer returns the buyer snapshot captured at order time.
func (o *Order) Buyer() Buyer {
	return o.buyer
}

// Product returns the product snapshot captured at order time.
func (o *Order) Product() ProductSnapshot {
	return o.product
}

// Quantity returns the number of units ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// Price returns the captured order price (quantity x unit price at order time).
func (o *Order) Price() kernel.Money {
	return o.price
}

// PaymentMethod returns how the buyer chose to pay.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns whether an online payment has been recorded.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Status returns the current lifecycle state of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ApprovedAt returns when the order was approved, or nil while not approved.
func (o *Order) ApprovedAt() *time.Time {
	return copyTime(o.approvedAt)
}

// CancelledAt returns when the order was cancelled, or nil while not cancelled.
func (o *Order) CancelledAt() *time.Time {
	return copyTime(o.cancelledAt)
}

// TrackingUpdates returns a copy of the production history in insertion order.
// Mutating the returned slice does not affect the order.
func (o *Order) TrackingUpdates() []TrackingUpdate {
	out := make([]TrackingUpdate, len(o.trackingUpdates))
	copy(out, o.trackingUpdates)
	return out
}

// ensureTransition validates that the current status permits moving to target.
func (o *Order) ensureTransition(target Status) error {
	if !o.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError(o.id.String(), o.status.String(), target.String())
	}
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCode validates and sets the order code.
// This is a private method used only during construction.
func (o *Order) setCode(code kernel.OrderCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.code = code
	return nil
}

// setBuyer validates and sets the buyer snapshot.
// This is a private method used only during construction.
func (o *Order) setBuyer(buyer Buyer) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	o.buyer = buyer
	return nil
}

// setProduct validates and sets the product snapshot.
// This is a private method used only during construction.
func (o *Order) setProduct(product ProductSnapshot) error {
	if err := product.Validate(); err != nil {
		return err
	}
	o.product = product
	return nil
}

// setQuantity validates the quantity against the product's captured MOQ.
// Requires the product snapshot to be set first.
func (o *Order) setQuantity(quantity int) error {
	moq := o.product.MinOrderQuantity()
	if quantity < moq || quantity > maxOrderQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, moq, maxOrderQuantity)
	}
	o.quantity = quantity
	return nil
}

// setPaymentMethod validates and sets the payment method.
// This is a private method used only during construction.
func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

// setCreatedAt validates and sets the placement time.
// This is a private method used only during construction.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsInvalidError("createdAt")
	}
	o.createdAt = createdAt.UTC()
	return nil
}

// copyTime returns a copy of the pointed-to time so callers cannot mutate
// the aggregate's timestamps through a shared pointer.
func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
