package model

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type greedyAssigner struct {
	logger           *zap.Logger
	identifierPrefix string
	identifierDigits int
}

type Option func(assigner *greedyAssigner)

func WithLogger(logger *zap.Logger) Option {
	return func(assigner *greedyAssigner) {
		if logger != nil {
			assigner.logger = logger
		}
	}
}

// WithIdentifierPattern sets the prefix and digit width of newly allocated assignment identifiers.
// An empty prefix or a non-positive width keeps the corresponding default.
func WithIdentifierPattern(prefix string, digits int) Option {
	return func(assigner *greedyAssigner) {
		if prefix != "" {
			assigner.identifierPrefix = prefix
		}
		if digits > 0 {
			assigner.identifierDigits = digits
		}
	}
}

// NewGreedyAssigner returns a single-pass assigner: subjects are visited once, in ascending code
// order, and each one takes the first valid slot and room without backtracking
func NewGreedyAssigner(options ...Option) Assigner {
	assigner := &greedyAssigner{
		logger:           zap.NewNop(),
		identifierPrefix: DefaultIdentifierPrefix,
		identifierDigits: DefaultIdentifierDigits,
	}
	for _, option := range options {
		option(assigner)
	}
	return assigner
}

func (assigner *greedyAssigner) Build(modelInput ModelInput) (Result, error) {
	//** Check preconditions
	if len(modelInput.Subjects) == 0 {
		return Result{}, ErrNoSubjects
	} else if len(modelInput.Professors) == 0 {
		return Result{}, ErrNoProfessors
	} else if len(modelInput.Rooms) == 0 {
		return Result{}, ErrNoRooms
	}

	assigner.logger.Info("building assignment",
		zap.Int("professors", len(modelInput.Professors)),
		zap.Int("rooms", len(modelInput.Rooms)),
		zap.Int("subjects", len(modelInput.Subjects)),
		zap.Int("previous", len(modelInput.Previous)),
	)

	professors := lo.KeyBy(modelInput.Professors, func(professor Professor) string { return professor.Id })
	skipped := newSkipReport()

	//** Filter eligible subjects (ascending code order is the only tie-breaker of the whole run)
	subjects := slices.Clone(modelInput.Subjects)
	slices.SortStableFunc(subjects, func(a, b Subject) int { return cmp.Compare(a.Code, b.Code) })

	eligible := make([]Subject, 0, len(subjects))
	for _, subject := range subjects {
		if _, ok := professors[subject.Professor]; subject.Professor == "" || !ok {
			assigner.skip(&skipped, NoProfessor, subject)
			continue
		}
		eligible = append(eligible, subject)
	}
	if len(eligible) == 0 {
		return Result{}, ErrNoEligibleSubjects
	}

	//** Initialize dependencies
	roomIndex := NewRoomIndex(modelInput.Rooms)

	professorSlots := make(map[string][]Slot, len(professors))
	professorSlotLookup := make(map[string]map[Slot]bool, len(professors))
	for id, professor := range professors {
		slots := GenerateAvailability(professor)
		professorSlots[id] = slots
		professorSlotLookup[id] = lo.SliceToMap(slots, func(slot Slot) (Slot, bool) { return slot, true })
	}

	previous := lo.KeyBy(modelInput.Previous, func(assignment Assignment) string { return assignment.Subject })
	identifiers := newIdentifierAllocator(
		lo.FilterMap(modelInput.Previous, func(assignment Assignment, _ int) (string, bool) {
			return assignment.Id, assignment.Id != ""
		}),
		assigner.identifierPrefix,
		assigner.identifierDigits,
	)

	usedProfessorSlots := make(map[booking]bool) // (professor, slot) pairs committed in this run
	usedRoomSlots := make(map[booking]bool)      // (room, slot) pairs committed in this run
	issuedIdentifiers := make(map[string]bool)   // Identifiers already handed to an assignment in this run

	//** Assign subjects
	assignments := make([]Assignment, 0, len(eligible))
	for _, subject := range eligible {
		slots := professorSlots[subject.Professor]
		if len(slots) == 0 {
			assigner.skip(&skipped, NoAvailableSlot, subject)
			continue
		}

		// Carry the previous record over, if any, and make sure it holds an identifier of its own
		assignment := previous[subject.Code]
		if assignment.Id == "" || issuedIdentifiers[assignment.Id] {
			assignment.Id = identifiers.allocate()
		}
		previousSlot, previousRoom := Slot{Day: assignment.Day, Time: assignment.Time}, assignment.Room

		slot, ok := resolveSlot(subject.Professor, previousSlot, slots, professorSlotLookup[subject.Professor], usedProfessorSlots)
		if !ok {
			assigner.skip(&skipped, NoAvailableSlot, subject)
			continue
		}

		// The professor's slot is committed only once a room is found
		room, ok := selectRoom(subject, slot, previousRoom, roomIndex, usedRoomSlots)
		if !ok {
			assigner.skip(&skipped, NoAvailableRoom, subject)
			continue
		}

		assignment = Assignment{
			Id:        assignment.Id,
			Subject:   subject.Code,
			Professor: subject.Professor,
			Room:      room,
			Day:       slot.Day,
			Time:      slot.Time,
		}
		usedProfessorSlots[booking{owner: subject.Professor, slot: slot}] = true
		issuedIdentifiers[assignment.Id] = true
		assignments = append(assignments, assignment)

		assigner.logger.Debug("subject assigned",
			zap.String("id", assignment.Id),
			zap.String("subject", assignment.Subject),
			zap.String("room", assignment.Room),
			zap.String("day", assignment.Day),
			zap.String("time", assignment.Time),
			zap.Bool("keptSlot", slot == previousSlot),
			zap.Bool("keptRoom", room == previousRoom),
		)
	}

	if len(assignments) == 0 {
		return Result{}, ErrNoAssignmentsProduced
	}

	slices.SortFunc(assignments, func(a, b Assignment) int { return cmp.Compare(a.Id, b.Id) })

	result := Result{Assignments: assignments, Skipped: skipped}
	assigner.logger.Info("assignment built",
		zap.Int("assigned", len(assignments)),
		zap.Int("skipped", skipped.Total()),
		zap.String("summary", result.Summary()),
	)
	return result, nil
}

func (assigner *greedyAssigner) Verify(assignments []Assignment, modelInput ModelInput) bool {
	return verify(assignments, modelInput)
}

func (assigner *greedyAssigner) skip(report *SkipReport, reason SkipReason, subject Subject) {
	report.add(reason, subject.Code)
	assigner.logger.Debug("subject skipped",
		zap.String("subject", subject.Code),
		zap.String("professor", subject.Professor),
		zap.String("reason", string(reason)),
	)
}
