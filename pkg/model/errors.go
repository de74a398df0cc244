package model

// Failure names a condition that aborts a whole run
type Failure string

const (
	NoSubjects            Failure = "NO_SUBJECTS"
	NoProfessors          Failure = "NO_PROFESSORS"
	NoRooms               Failure = "NO_ROOMS"
	NoEligibleSubjects    Failure = "NO_ELIGIBLE_SUBJECTS"
	NoAssignmentsProduced Failure = "NO_ASSIGNMENTS_PRODUCED"
)

var failureMessages = map[Failure]string{
	NoSubjects:            "no subjects available to schedule",
	NoProfessors:          "no professors available to schedule",
	NoRooms:               "no rooms available to schedule",
	NoEligibleSubjects:    "no subjects are linked to a valid professor",
	NoAssignmentsProduced: "unable to generate schedule with the current data",
}

// StructuralError is returned instead of a result when a run cannot produce a usable assignment.
// It is comparable, so errors.Is(err, ErrNoRooms) works.
type StructuralError struct {
	Failure Failure
}

func (err StructuralError) Error() string {
	if message, ok := failureMessages[err.Failure]; ok {
		return message
	}
	return string(err.Failure)
}

var (
	ErrNoSubjects            = StructuralError{Failure: NoSubjects}
	ErrNoProfessors          = StructuralError{Failure: NoProfessors}
	ErrNoRooms               = StructuralError{Failure: NoRooms}
	ErrNoEligibleSubjects    = StructuralError{Failure: NoEligibleSubjects}
	ErrNoAssignmentsProduced = StructuralError{Failure: NoAssignmentsProduced}
)
