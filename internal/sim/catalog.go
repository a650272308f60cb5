package sim

// ActivityID is a closed enumeration of everything the player can spend
// time on.
type ActivityID string

const (
	ActivityGym       ActivityID = "gym"
	ActivityStudy     ActivityID = "study"
	ActivitySocialize ActivityID = "socialize"
	ActivitySports    ActivityID = "sports"
	ActivityExam      ActivityID = "exam"
	ActivityParty     ActivityID = "party"
	ActivityMeditate  ActivityID = "meditate"
	ActivitySleep     ActivityID = "sleep"
	ActivityTherapy   ActivityID = "therapy"
	ActivityWork      ActivityID = "work"
	ActivityFreelance ActivityID = "freelance"
)

// ActivityKind groups catalog entries for display.
type ActivityKind string

const (
	KindTask     ActivityKind = "task"
	KindEvent    ActivityKind = "event"
	KindWellness ActivityKind = "wellness"
	KindJob      ActivityKind = "job"
)

// Requirement is an eligibility gate over the attribute vector. Only
// events carry one; failing it mutates nothing.
type Requirement struct {
	Field Field
	Min   float64
}

// ScaledDelta is an attribute adjustment expressed as a coefficient of
// the activity's effect amount (difficulty x base x boost).
type ScaledDelta struct {
	Field Field
	Coef  float64
}

// Activity is one catalog entry. Base multiplies the difficulty
// multiplier to form the effect amount; Scaled deltas are coefficients of
// that amount, Flat deltas are applied as-is.
type Activity struct {
	ID       ActivityID
	Name     string
	Kind     ActivityKind
	Message  string
	Base     float64
	Scaled   []ScaledDelta
	Flat     []StatDelta
	Minutes  int
	Aura     int
	Requires *Requirement
	Boost    BoostKind // "" when no boost applies
}

// Catalog is the fixed set of activities, in menu order.
var Catalog = []Activity{
	{
		ID: ActivityGym, Name: "Gym", Kind: KindTask,
		Message: "You worked out at the gym!",
		Base:    0.8,
		Scaled:  []ScaledDelta{{FieldFitness, 1.0}, {FieldMentalHealth, 0.5}},
		Minutes: 60, Aura: 2, Boost: BoostEnergy,
	},
	{
		ID: ActivityStudy, Name: "Study", Kind: KindTask,
		Message: "You studied hard!",
		Base:    0.7,
		Scaled:  []ScaledDelta{{FieldAcademics, 1.0}, {FieldMentalHealth, -0.3}},
		Minutes: 90, Aura: 3, Boost: BoostStudy,
	},
	{
		ID: ActivitySocialize, Name: "Socialize", Kind: KindTask,
		Message: "You socialized with friends!",
		Base:    0.6,
		Scaled:  []ScaledDelta{{FieldSocial, 1.0}, {FieldMentalHealth, 0.4}},
		Minutes: 45, Aura: 2, Boost: BoostSocial,
	},
	{
		ID: ActivitySports, Name: "Sports Event", Kind: KindEvent,
		Message: "You competed in a sports event!",
		Base:    1.0,
		Scaled:  []ScaledDelta{{FieldFitness, 1.5}, {FieldSocial, 0.5}},
		Minutes: 120, Aura: 5,
		Requires: &Requirement{FieldFitness, 3},
		Boost:    BoostEnergy,
	},
	{
		ID: ActivityExam, Name: "Exam", Kind: KindEvent,
		Message: "You took an exam!",
		Base:    1.0,
		Scaled:  []ScaledDelta{{FieldAcademics, 2.0}, {FieldMentalHealth, -0.5}},
		Minutes: 120, Aura: 6,
		Requires: &Requirement{FieldAcademics, 3},
		Boost:    BoostStudy,
	},
	{
		ID: ActivityParty, Name: "Party", Kind: KindEvent,
		Message: "You attended a party!",
		Base:    1.0,
		Scaled:  []ScaledDelta{{FieldSocial, 1.2}, {FieldMentalHealth, 0.8}, {FieldFitness, -0.3}},
		Minutes: 180, Aura: 4,
		Requires: &Requirement{FieldSocial, 2},
		Boost:    BoostSocial,
	},
	{
		ID: ActivityMeditate, Name: "Meditate", Kind: KindWellness,
		Message: "You meditated!",
		Base:    0.5,
		Scaled:  []ScaledDelta{{FieldMentalHealth, 1.0}},
		Minutes: 30, Aura: 1,
	},
	{
		ID: ActivitySleep, Name: "Extra Sleep", Kind: KindWellness,
		Message: "You got extra sleep!",
		Base:    0.7,
		Scaled:  []ScaledDelta{{FieldMentalHealth, 1.0}, {FieldFitness, 0.3}},
		Minutes: 480, Aura: 2,
	},
	{
		ID: ActivityTherapy, Name: "Therapy", Kind: KindWellness,
		Message: "You attended a therapy session!",
		Base:    1.0,
		Scaled:  []ScaledDelta{{FieldMentalHealth, 1.0}},
		Flat:    []StatDelta{{FieldFinances, -2}},
		Minutes: 60, Aura: 3,
	},
	{
		ID: ActivityWork, Name: "Work Shift", Kind: KindJob,
		Message: "You worked a shift!",
		Base:    0.8,
		Scaled:  []ScaledDelta{{FieldFinances, 1.0}, {FieldMentalHealth, -0.2}},
		Minutes: 240, Aura: 4,
	},
	{
		ID: ActivityFreelance, Name: "Freelance", Kind: KindJob,
		Message: "You did freelance work!",
		Base:    1.2,
		Scaled:  []ScaledDelta{{FieldFinances, 1.0}, {FieldAcademics, 0.3}, {FieldMentalHealth, -0.4}},
		Minutes: 180, Aura: 5,
	},
}

// ActivityByID looks up a catalog entry.
func ActivityByID(id ActivityID) (Activity, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

var friendNames = []string{"Leenex", "Remy", "Freya", "Dilna", "Sanmai"}

var friendComments = map[ActivityID][]string{
	ActivitySports: {"Great game!", "You were amazing out there!", "What a performance!", "You're a natural athlete!", "Teamwork makes the dream work!"},
	ActivityExam:   {"You aced it!", "All that studying paid off!", "Top of the class!", "Brainy over here!", "Professor's favorite!"},
	ActivityParty:  {"That was fun!", "You're the life of the party!", "Great dance moves!", "Everyone loves you!", "Social butterfly!"},
}

// FriendComments returns the celebration lines friends send after an
// event, already attributed to a friend. Non-events return nil.
func FriendComments(id ActivityID) []string {
	comments, ok := friendComments[id]
	if !ok {
		return nil
	}
	out := make([]string, len(comments))
	for i, msg := range comments {
		out[i] = friendNames[i%len(friendNames)] + ": " + msg
	}
	return out
}
