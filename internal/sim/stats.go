package sim

const (
	// StatMin and StatMax bound every attribute after each mutation.
	StatMin = 0.0
	StatMax = 20.0
)

// Stats is the five-dimensional attribute vector. Every mutation goes
// through Apply, which clamps each field into [StatMin, StatMax], so no
// caller ever observes an out-of-range value.
type Stats struct {
	Fitness      float64 `json:"fitness"`
	Academics    float64 `json:"academics"`
	Social       float64 `json:"social"`
	MentalHealth float64 `json:"mentalHealth"`
	Finances     float64 `json:"finances"`
}

// StatDelta is a signed adjustment to a single field.
type StatDelta struct {
	Field  Field
	Amount float64
}

// Apply adds each delta to its field, then clamps the whole vector.
// Out-of-range results are clamped, never rejected.
func (s *Stats) Apply(deltas []StatDelta) {
	for _, d := range deltas {
		*s.ptr(d.Field) += d.Amount
	}
	s.clamp()
}

func (s *Stats) clamp() {
	for _, f := range Fields {
		p := s.ptr(f)
		if *p < StatMin {
			*p = StatMin
		}
		if *p > StatMax {
			*p = StatMax
		}
	}
}

func (s *Stats) ptr(f Field) *float64 {
	switch f {
	case FieldFitness:
		return &s.Fitness
	case FieldAcademics:
		return &s.Academics
	case FieldSocial:
		return &s.Social
	case FieldMentalHealth:
		return &s.MentalHealth
	case FieldFinances:
		return &s.Finances
	default:
		// Unknown fields land on mental health rather than panicking;
		// catalog entries only ever name valid fields.
		return &s.MentalHealth
	}
}

// Get returns the current value of a field.
func (s Stats) Get(f Field) float64 {
	return *s.ptr(f)
}

// AllAbove reports whether every field strictly exceeds v.
func (s Stats) AllAbove(v float64) bool {
	for _, f := range Fields {
		if s.Get(f) <= v {
			return false
		}
	}
	return true
}

// IsMax reports whether f is greater than or equal to every field,
// including itself.
func (s Stats) IsMax(f Field) bool {
	v := s.Get(f)
	for _, other := range Fields {
		if v < s.Get(other) {
			return false
		}
	}
	return true
}
