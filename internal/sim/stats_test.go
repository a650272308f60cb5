package sim

import "testing"

func TestApplyClampsBothBounds(t *testing.T) {
	var s Stats
	s.Apply([]StatDelta{{FieldFitness, 25}})
	if s.Fitness != StatMax {
		t.Fatalf("fitness=%v, want clamped to %v", s.Fitness, StatMax)
	}
	s.Apply([]StatDelta{{FieldFitness, -50}})
	if s.Fitness != StatMin {
		t.Fatalf("fitness=%v, want clamped to %v", s.Fitness, StatMin)
	}
}

func TestApplySequenceStaysInRange(t *testing.T) {
	var s Stats
	deltas := []StatDelta{
		{FieldMentalHealth, 7},
		{FieldMentalHealth, 9},
		{FieldMentalHealth, 9},
		{FieldFinances, -3},
		{FieldAcademics, 4.5},
	}
	for _, d := range deltas {
		s.Apply([]StatDelta{d})
	}
	for _, f := range Fields {
		v := s.Get(f)
		if v < StatMin || v > StatMax {
			t.Fatalf("%s=%v out of [%v,%v]", f, v, StatMin, StatMax)
		}
	}
	if s.MentalHealth != StatMax {
		t.Fatalf("mentalHealth=%v, want %v", s.MentalHealth, StatMax)
	}
	if s.Finances != StatMin {
		t.Fatalf("finances=%v, want %v", s.Finances, StatMin)
	}
	if s.Academics != 4.5 {
		t.Fatalf("academics=%v, want 4.5", s.Academics)
	}
}

func TestAllAboveIsStrict(t *testing.T) {
	s := Stats{Fitness: 11, Academics: 11, Social: 11, MentalHealth: 11, Finances: 10}
	if s.AllAbove(10) {
		t.Fatalf("AllAbove(10)=true with finances exactly 10")
	}
	s.Finances = 10.5
	if !s.AllAbove(10) {
		t.Fatalf("AllAbove(10)=false with every field above 10")
	}
}

func TestIsMaxTies(t *testing.T) {
	s := Stats{Fitness: 12, Academics: 12, Social: 3, MentalHealth: 3, Finances: 3}
	if !s.IsMax(FieldFitness) {
		t.Fatalf("fitness should tie for max")
	}
	if !s.IsMax(FieldAcademics) {
		t.Fatalf("academics should tie for max")
	}
	if s.IsMax(FieldSocial) {
		t.Fatalf("social is not max")
	}
}
