// Package session provides the DeliverySession aggregate: the scoped,
// single-drone window during which medication is loaded, and the
// MedicationLoad rows it exclusively owns.
//
// Key business rules:
//   - A drone has at most one open session (completedAt == nil) at a time
//   - At most one MedicationLoad row exists per (session, medication)
//     pair; repeat loads increment quantity instead of adding rows
//   - Quantities are positive integers
//   - A completed session can never receive loads again
//
// Capacity (the drone's weight limit) is validated through
// CheckCapacity, which callers must run inside the per-session
// critical section so the check and the following UpsertLoad are
// atomic relative to concurrent loads on the same session.
package session
