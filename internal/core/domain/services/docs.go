// Package services provides domain services that operate on the order
// aggregate without belonging to it.
//
// The package includes:
//   - TimelineBuilder: projects an order's tracking history onto the fixed
//     eight-checkpoint production timeline shown to buyers
//
// Domain services here are pure computations: they hold no state, perform no
// I/O and persist nothing.
package services
