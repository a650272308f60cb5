package sim

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		stats Stats
		want  Ending
	}{
		{"dropout on mental health", Stats{Fitness: 10, Academics: 15, Social: 10, MentalHealth: 2, Finances: 10}, EndingDropout},
		{"dropout on academics", Stats{Fitness: 10, Academics: 2, Social: 10, MentalHealth: 15, Finances: 10}, EndingDropout},
		{"dropout beats specialists", Stats{Fitness: 19, Academics: 2.9, Social: 5, MentalHealth: 12, Finances: 5}, EndingDropout},
		{"balanced", Stats{Fitness: 11, Academics: 11, Social: 11, MentalHealth: 11, Finances: 11}, EndingBalanced},
		{"balanced beats specialists", Stats{Fitness: 11, Academics: 12, Social: 13, MentalHealth: 14, Finances: 15}, EndingBalanced},
		{"athlete", Stats{Fitness: 15, Academics: 5, Social: 4, MentalHealth: 5, Finances: 3}, EndingAthlete},
		{"scholar", Stats{Fitness: 2, Academics: 16, Social: 4, MentalHealth: 15, Finances: 3}, EndingScholar},
		{"socialite", Stats{Fitness: 3, Academics: 5, Social: 18, MentalHealth: 5, Finances: 4}, EndingSocialite},
		{"wellness guru", Stats{Fitness: 3, Academics: 5, Social: 4, MentalHealth: 19, Finances: 3}, EndingWellnessGuru},
		{"entrepreneur", Stats{Fitness: 3, Academics: 5, Social: 4, MentalHealth: 5, Finances: 19}, EndingEntrepreneur},
		{"tie resolves to earliest", Stats{Fitness: 12, Academics: 12, Social: 3, MentalHealth: 3, Finances: 3}, EndingAthlete},
		{"all equal resolves to fitness", Stats{Fitness: 5, Academics: 5, Social: 5, MentalHealth: 5, Finances: 5}, EndingAthlete},
	}

	for _, tc := range cases {
		if got := Classify(tc.stats); got != tc.want {
			t.Fatalf("%s: Classify=%q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestEndingInfoCoversEveryEnding(t *testing.T) {
	endings := []Ending{
		EndingDropout, EndingBalanced, EndingAthlete, EndingScholar,
		EndingSocialite, EndingWellnessGuru, EndingEntrepreneur, EndingGraduate,
	}
	for _, e := range endings {
		info := e.Info()
		if info.Ending != e {
			t.Fatalf("Info() for %q returned %q", e, info.Ending)
		}
		if info.Icon == "" || info.Blurb == "" {
			t.Fatalf("ending %q is missing display metadata", e)
		}
	}
}
