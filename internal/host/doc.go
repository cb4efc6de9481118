// Package host owns the hardware request contract handed from the host-facing
// console to the bridge execution stage.
//
// Ownership boundary:
// - interface/operation/channel enums
//
// - draft request builder
//
// - sealed (validated) request value
//
// Lifecycle order:
// - NewRequest -> Set* -> Seal
//
// - only a Valid request may cross into execution; a draft is never dispatched.
package host
