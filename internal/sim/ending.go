package sim

// Ending is the categorical result of a finished playthrough.
type Ending string

const (
	EndingDropout      Ending = "Dropout"
	EndingBalanced     Ending = "Balanced Student"
	EndingAthlete      Ending = "Athlete"
	EndingScholar      Ending = "Scholar"
	EndingSocialite    Ending = "Socialite"
	EndingWellnessGuru Ending = "Wellness Guru"
	EndingEntrepreneur Ending = "Entrepreneur"
	EndingGraduate     Ending = "Graduate"
)

// specialistOrder pairs each attribute with its specialist ending. Ties
// resolve to the earliest entry, which makes the Graduate fallback
// effectively unreachable; that behavior is intentional and load-bearing
// for save compatibility.
var specialistOrder = []struct {
	Field  Field
	Ending Ending
}{
	{FieldFitness, EndingAthlete},
	{FieldAcademics, EndingScholar},
	{FieldSocial, EndingSocialite},
	{FieldMentalHealth, EndingWellnessGuru},
	{FieldFinances, EndingEntrepreneur},
}

// Classify maps a final attribute vector to its ending. Pure and
// deterministic; evaluated once when the run terminates. First match
// wins: dropout, then balanced, then the specialist chain.
func Classify(s Stats) Ending {
	if s.MentalHealth < 3 || s.Academics < 3 {
		return EndingDropout
	}
	if s.AllAbove(10) {
		return EndingBalanced
	}
	for _, sp := range specialistOrder {
		if s.IsMax(sp.Field) {
			return sp.Ending
		}
	}
	return EndingGraduate
}

// EndingInfo is display metadata for one ending.
type EndingInfo struct {
	Ending Ending
	Icon   string
	Blurb  string
}

// EndingTable lists every ending with its presentation metadata.
var EndingTable = []EndingInfo{
	{EndingDropout, "📉", "Mental health or grades slipped too far."},
	{EndingBalanced, "🎓", "Every attribute above 10. The complete student."},
	{EndingAthlete, "💪", "Fitness topped the chart."},
	{EndingScholar, "📚", "Academics topped the chart."},
	{EndingSocialite, "👥", "Social life topped the chart."},
	{EndingWellnessGuru, "🧘", "Mental health topped the chart."},
	{EndingEntrepreneur, "💰", "Finances topped the chart."},
	{EndingGraduate, "🎉", "Made it through, somehow."},
}

// Info returns the display metadata for an ending.
func (e Ending) Info() EndingInfo {
	for _, info := range EndingTable {
		if info.Ending == e {
			return info
		}
	}
	return EndingInfo{Ending: e}
}
