package models

// ElectiveStats summarises the whole dataset, independent of any filter.
type ElectiveStats struct {
	TotalElectives int     `json:"totalElectives"`
	OECount        int     `json:"oeCount"`
	PE1Count       int     `json:"pe1Count"`
	PE2Count       int     `json:"pe2Count"`
	LowestCutoff   float64 `json:"lowestCutoff"`
	HighestCutoff  float64 `json:"highestCutoff"`
	TotalStudents  int     `json:"totalStudents"`
	Departments    int     `json:"departments"`
}

// CountFor returns the per-category count.
func (s ElectiveStats) CountFor(c Category) int {
	switch c {
	case OpenElective:
		return s.OECount
	case ProgramElectiveI:
		return s.PE1Count
	case ProgramElectiveII:
		return s.PE2Count
	}
	return 0
}

// FAQEntry is a question shown on the FAQ page.
type FAQEntry struct {
	ID       string `json:"id" yaml:"id"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}
