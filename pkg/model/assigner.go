package model

type Assigner interface {
	// Builds a new assignment list from the snapshot, carrying over previous assignments when still valid.
	// A StructuralError is returned, with no result, when the run cannot produce a usable assignment
	Build(modelInput ModelInput) (Result, error)

	// Checks that every assignment is consistent with the snapshot and that no professor or room is double-booked
	Verify(assignments []Assignment, modelInput ModelInput) bool
}
