// Package drone provides domain entities and business logic for the
// drone fleet. It implements the Drone aggregate root together with
// the lifecycle state machine and the airframe model enumeration.
//
// The package includes:
//   - Drone: the aggregate root holding identity, static attributes, and state
//   - State: the lifecycle state machine (only Idle -> Loading is implemented)
//   - Model: the fixed airframe enumeration
//
// Key business rules:
//   - Serial numbers are unique, non-empty, and at most 100 characters
//   - Weight limits are positive and capped at 500 grams
//   - Battery capacity is a percentage in [0, 100]
//   - A drone below 25% battery can neither be acquired nor loaded
//   - Only an Idle drone can transition to Loading; further transitions
//     exist as named states without triggers
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business
// rules are enforced.
package drone
