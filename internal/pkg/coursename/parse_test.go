package coursename

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Listing
	}{
		{
			name: "spaced colon",
			raw:  "AAE 4313 : Introduction to Automobile Engineering",
			want: Listing{Code: "AAE 4313", Title: "Introduction to Automobile Engineering", Department: "AAE"},
		},
		{
			name: "dash separator",
			raw:  "HUM 4329 - CREATIVE COMMUNICATION: ART, MEDIA, CULTURE AND IDEAS",
			want: Listing{Code: "HUM 4329", Title: "CREATIVE COMMUNICATION: ART, MEDIA, CULTURE AND IDEAS", Department: "HUM"},
		},
		{
			name: "tight colon",
			raw:  "ICE 4318: Outdoor Leadership",
			want: Listing{Code: "ICE 4318", Title: "Outdoor Leadership", Department: "ICE"},
		},
		{
			name: "open elective prefix",
			raw:  "AAE 4311 : OPEN ELECTIVE - INTRODUCTION TO AEROSPACE ENGINEERING",
			want: Listing{Code: "AAE 4311", Title: "INTRODUCTION TO AEROSPACE ENGINEERING", Department: "AAE"},
		},
		{
			name: "elective prefix without spaces",
			raw:  "CRA 4401 : ELECTIVE-MARKETING IN A DIGITAL WORLD",
			want: Listing{Code: "CRA 4401", Title: "MARKETING IN A DIGITAL WORLD", Department: "CRA"},
		},
		{
			name: "dash then open elective",
			raw:  "IIE 4310 - OPEN ELECTIVE - MEDICAL EMERGENCY AND FIRST AID",
			want: Listing{Code: "IIE 4310", Title: "MEDICAL EMERGENCY AND FIRST AID", Department: "IIE"},
		},
		{
			name: "misspelled prefix behind OPEN is kept",
			raw:  "IIE 4315 : OPEN ELCTIVE - REPORTING AND WRITING",
			want: Listing{Code: "IIE 4315", Title: "OPEN ELCTIVE - REPORTING AND WRITING", Department: "IIE"},
		},
		{
			name: "misspelled prefix alone",
			raw:  "XYZ 1000 : elctive - Something",
			want: Listing{Code: "XYZ 1000", Title: "Something", Department: "XYZ"},
		},
		{
			name: "colon inside title after code",
			raw:  "IIE 4334 : OPEN ELECTIVE - DISCERNING INDIA : LIVING CULTURES OF TULUNADU",
			want: Listing{Code: "IIE 4334", Title: "DISCERNING INDIA : LIVING CULTURES OF TULUNADU", Department: "IIE"},
		},
		{
			name: "no separator",
			raw:  "Free text without a code",
			want: Listing{Code: "", Title: "Free text without a code", Department: OtherDepartment},
		},
		{
			name: "separator too far in",
			raw:  "A very long heading : title",
			want: Listing{Code: "", Title: "A very long heading : title", Department: OtherDepartment},
		},
		{
			name: "leading separator falls through to the next one",
			raw:  " : title",
			want: Listing{Code: "", Title: "title", Department: OtherDepartment},
		},
		{
			name: "code without letters",
			raw:  "4311 : Numbers only",
			want: Listing{Code: "4311", Title: "Numbers only", Department: OtherDepartment},
		},
		{
			name: "fourteen character code",
			raw:  "ABCDEFGHIJ 123 : Title",
			want: Listing{Code: "ABCDEFGHIJ 123", Title: "Title", Department: "ABCDEFGHIJ"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

func TestParse_SeparatorPriority(t *testing.T) {
	// " - " appears first in the text but " : " has priority when both qualify.
	got := Parse("AB - CD : EF")
	assert.Equal(t, "AB - CD", got.Code)
	assert.Equal(t, "EF", got.Title)
}

func TestDepartment(t *testing.T) {
	assert.Equal(t, "CSE", Department("CSE 4405"))
	assert.Equal(t, "MAT", Department("MAT5301"))
	assert.Equal(t, OtherDepartment, Department(""))
	assert.Equal(t, OtherDepartment, Department("cse 4405"))
}

func TestCleanTitle(t *testing.T) {
	assert.Equal(t, "YOGA", CleanTitle("OPEN ELECTIVE - YOGA"))
	assert.Equal(t, "Yoga", CleanTitle("Open Elective-Yoga"))
	assert.Equal(t, "SPACEFLIGHT", CleanTitle("ELECTIVE - SPACEFLIGHT"))
	assert.Equal(t, "Embedded System Design", CleanTitle("  Embedded System Design "))
	// the prefix is matched literally, not as a word
	assert.Equal(t, "S OVERVIEW", CleanTitle("ELECTIVES OVERVIEW"))
}
