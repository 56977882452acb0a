// Package services provides the domain services that keep an order's state and status
// consistent with the state/status registry.
//
// The package includes:
//   - StateResolver: predicts the state the order is about to move to and its default status
//   - IntegrityValidator: checks that exactly one registry assignment links a status to a state
//   - StateStatusIntegrity: the pre-save hook combining both and aborting invalid saves
//
// StateResolver replicates the transition rules the save pipeline applies to an order, so
// the hook validates the pair that will actually be written rather than the pair the order
// carried before the save. Its branch order is part of the contract; see TargetState.
package services
