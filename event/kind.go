package event

// Kind discriminates normalized events. The enumeration spans vital
// events, family events, and attributes carried as events.
type Kind string

// Individual life events.
const (
	KindBirth            Kind = "birth"
	KindChristening      Kind = "christening"
	KindDeath            Kind = "death"
	KindBurial           Kind = "burial"
	KindCremation        Kind = "cremation"
	KindAdoption         Kind = "adoption"
	KindBaptism          Kind = "baptism"
	KindBarMitzvah       Kind = "bar_mitzvah"
	KindBasMitzvah       Kind = "bas_mitzvah"
	KindBlessing         Kind = "blessing"
	KindAdultChristening Kind = "adult_christening"
	KindConfirmation     Kind = "confirmation"
	KindFirstCommunion   Kind = "first_communion"
	KindOrdination       Kind = "ordination"
	KindNaturalization   Kind = "naturalization"
	KindEmigration       Kind = "emigration"
	KindImmigration      Kind = "immigration"
	KindCensus           Kind = "census"
	KindProbate          Kind = "probate"
	KindWill             Kind = "will"
	KindGraduation       Kind = "graduation"
	KindRetirement       Kind = "retirement"
	KindCustom           Kind = "custom"
)

// Individual attributes carried as events.
const (
	KindCaste               Kind = "caste"
	KindPhysicalDescription Kind = "physical_description"
	KindEducation           Kind = "education"
	KindIDNumber            Kind = "id_number"
	KindNationality         Kind = "nationality"
	KindChildrenCount       Kind = "children_count"
	KindMarriagesCount      Kind = "marriages_count"
	KindOccupation          Kind = "occupation"
	KindProperty            Kind = "property"
	KindReligion            Kind = "religion"
	KindResidence           Kind = "residence"
	KindSSN                 Kind = "ssn"
	KindTitle               Kind = "title"
	KindFact                Kind = "fact"
)

// Family events.
const (
	KindAnnulment          Kind = "annulment"
	KindDivorce            Kind = "divorce"
	KindDivorceFiled       Kind = "divorce_filed"
	KindEngagement         Kind = "engagement"
	KindMarriageBanns      Kind = "marriage_banns"
	KindMarriageContract   Kind = "marriage_contract"
	KindMarriage           Kind = "marriage"
	KindMarriageLicense    Kind = "marriage_license"
	KindMarriageSettlement Kind = "marriage_settlement"
)

// individualKinds maps individual sub-record tags to kinds. CENS and
// RESI appear both here and on families; the shared tag resolves to the
// same kind in both positions.
var individualKinds = map[string]Kind{
	"BIRT": KindBirth,
	"CHR":  KindChristening,
	"DEAT": KindDeath,
	"BURI": KindBurial,
	"CREM": KindCremation,
	"ADOP": KindAdoption,
	"BAPM": KindBaptism,
	"BARM": KindBarMitzvah,
	"BASM": KindBasMitzvah,
	"BLES": KindBlessing,
	"CHRA": KindAdultChristening,
	"CONF": KindConfirmation,
	"FCOM": KindFirstCommunion,
	"ORDN": KindOrdination,
	"NATU": KindNaturalization,
	"EMIG": KindEmigration,
	"IMMI": KindImmigration,
	"CENS": KindCensus,
	"PROB": KindProbate,
	"WILL": KindWill,
	"GRAD": KindGraduation,
	"RETI": KindRetirement,
	"EVEN": KindCustom,
	"CAST": KindCaste,
	"DSCR": KindPhysicalDescription,
	"EDUC": KindEducation,
	"IDNO": KindIDNumber,
	"NATI": KindNationality,
	"NCHI": KindChildrenCount,
	"NMR":  KindMarriagesCount,
	"OCCU": KindOccupation,
	"PROP": KindProperty,
	"RELI": KindReligion,
	"RESI": KindResidence,
	"SSN":  KindSSN,
	"TITL": KindTitle,
	"FACT": KindFact,
}

// familyKinds maps family sub-record tags to kinds.
var familyKinds = map[string]Kind{
	"ANUL": KindAnnulment,
	"CENS": KindCensus,
	"DIV":  KindDivorce,
	"DIVF": KindDivorceFiled,
	"ENGA": KindEngagement,
	"MARB": KindMarriageBanns,
	"MARC": KindMarriageContract,
	"MARR": KindMarriage,
	"MARL": KindMarriageLicense,
	"MARS": KindMarriageSettlement,
	"RESI": KindResidence,
	"EVEN": KindCustom,
}

// IndividualKind resolves an individual sub-record tag to its kind.
func IndividualKind(tag string) (Kind, bool) {
	k, ok := individualKinds[tag]
	return k, ok
}

// FamilyKind resolves a family sub-record tag to its kind.
func FamilyKind(tag string) (Kind, bool) {
	k, ok := familyKinds[tag]
	return k, ok
}

// IsDivorceKind reports whether a kind records a divorce or a divorce
// filing.
func IsDivorceKind(k Kind) bool {
	return k == KindDivorce || k == KindDivorceFiled
}
