// Package order contains the Order aggregate and its value objects.
//
// The aggregate models the lifecycle of a garment production order. An order
// is placed in Pending status and waits for a manager decision: Approve and
// Reject are the manager's moves, Cancel belongs to the buyer while the order
// is still pending. All three outcomes are terminal for the status machine.
//
// Production progress on approved orders is recorded as tracking updates
// against a fixed eight-checkpoint sequence (Cutting Completed through
// Delivered). The history is append-only and deliberately tolerates
// out-of-order checkpoint submissions; views derive progress from the
// chronologically latest update.
//
// Value objects in this package (Status, Checkpoint, TrackingUpdate, Buyer,
// ProductSnapshot, PaymentMethod, PaymentStatus, Role) validate themselves on
// construction, so an Order built through its constructors is always in a
// consistent state.
package order
