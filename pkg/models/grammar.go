package models

// PartOfSpeech identifies one of the two word families in the training data
type PartOfSpeech string

const (
	// Noun covers all declinable headwords (masc/fem/nt patterns)
	Noun PartOfSpeech = "noun"
	// Verb covers conjugated headwords (present-tense patterns and friends)
	Verb PartOfSpeech = "verb"
)

// NounCase is the grammatical case of a declension slot.
// Zero is the unspecified sentinel and is never valid for scheduling.
type NounCase int

const (
	CaseNone NounCase = iota
	CaseNominative
	CaseAccusative
	CaseInstrumental
	CaseDative
	CaseAblative
	CaseGenitive
	CaseLocative
	CaseVocative
)

// AllCases lists every schedulable case in canonical order
var AllCases = []NounCase{
	CaseNominative, CaseAccusative, CaseInstrumental, CaseDative,
	CaseAblative, CaseGenitive, CaseLocative, CaseVocative,
}

var caseNames = map[NounCase]string{
	CaseNominative:   "nom",
	CaseAccusative:   "acc",
	CaseInstrumental: "instr",
	CaseDative:       "dat",
	CaseAblative:     "abl",
	CaseGenitive:     "gen",
	CaseLocative:     "loc",
	CaseVocative:     "voc",
}

// String returns the short grammatical abbreviation
func (c NounCase) String() string {
	if name, ok := caseNames[c]; ok {
		return name
	}
	return "none"
}

// Gender is the grammatical gender of a noun lemma
type Gender int

const (
	GenderNone Gender = iota
	GenderMasculine
	GenderFeminine
	GenderNeuter
)

// AllGenders lists every schedulable gender in canonical order
var AllGenders = []Gender{GenderMasculine, GenderFeminine, GenderNeuter}

var genderNames = map[Gender]string{
	GenderMasculine: "masc",
	GenderFeminine:  "fem",
	GenderNeuter:    "nt",
}

// String returns the short grammatical abbreviation
func (g Gender) String() string {
	if name, ok := genderNames[g]; ok {
		return name
	}
	return "none"
}

// GrammNumber is grammatical number (singular/plural)
type GrammNumber int

const (
	NumberNone GrammNumber = iota
	NumberSingular
	NumberPlural
)

// AllNumbers lists both grammatical numbers in canonical order
var AllNumbers = []GrammNumber{NumberSingular, NumberPlural}

// String returns the short grammatical abbreviation
func (n GrammNumber) String() string {
	switch n {
	case NumberSingular:
		return "sg"
	case NumberPlural:
		return "pl"
	}
	return "none"
}

// Person is the grammatical person of a conjugation slot
type Person int

const (
	PersonNone Person = iota
	PersonFirst
	PersonSecond
	PersonThird
)

// AllPersons lists every person in canonical order
var AllPersons = []Person{PersonFirst, PersonSecond, PersonThird}

// String returns the short grammatical abbreviation
func (p Person) String() string {
	switch p {
	case PersonFirst:
		return "1st"
	case PersonSecond:
		return "2nd"
	case PersonThird:
		return "3rd"
	}
	return "none"
}

// Tense covers tense proper plus the traditional moods (imperative, optative)
type Tense int

const (
	TenseNone Tense = iota
	TensePresent
	TenseImperative
	TenseOptative
	TenseFuture
	TenseAorist
)

// AllTenses lists every tense in canonical order
var AllTenses = []Tense{TensePresent, TenseImperative, TenseOptative, TenseFuture, TenseAorist}

var tenseNames = map[Tense]string{
	TensePresent:    "pr",
	TenseImperative: "imp",
	TenseOptative:   "opt",
	TenseFuture:     "fut",
	TenseAorist:     "aor",
}

// String returns the short grammatical abbreviation
func (t Tense) String() string {
	if name, ok := tenseNames[t]; ok {
		return name
	}
	return "none"
}
