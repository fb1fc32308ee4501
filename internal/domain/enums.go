package domain

type BreedingStatus string

const (
	BreedingUnconfirmed BreedingStatus = "unconfirmed"
	BreedingConfirmed   BreedingStatus = "confirmed"
	BreedingOpen        BreedingStatus = "open"
)

type BreedingMethod string

const (
	MethodNatural                BreedingMethod = "natural"
	MethodArtificialInsemination BreedingMethod = "artificial_insemination"
	MethodEmbryoTransfer         BreedingMethod = "embryo_transfer"
)

// ValidBreedingMethods is the canonical set of accepted breeding method strings.
var ValidBreedingMethods = map[BreedingMethod]bool{
	MethodNatural:                true,
	MethodArtificialInsemination: true,
	MethodEmbryoTransfer:         true,
}

type HealthStatus string

const (
	HealthGood            HealthStatus = "good"
	HealthAttentionNeeded HealthStatus = "attention_needed"
	HealthCritical        HealthStatus = "critical"
)

// ValidHealthStatuses is the canonical set of accepted health status strings.
var ValidHealthStatuses = map[HealthStatus]bool{
	HealthGood:            true,
	HealthAttentionNeeded: true,
	HealthCritical:        true,
}

type BirthStatus string

const (
	BirthPregnant   BirthStatus = "pregnant"
	BirthGivenBirth BirthStatus = "given_birth"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type Vigor string

const (
	VigorStrong   Vigor = "strong"
	VigorModerate Vigor = "moderate"
	VigorWeak     Vigor = "weak"
	VigorVeryWeak Vigor = "very_weak"
)

// ValidVigors is the canonical set of accepted vigor strings.
var ValidVigors = map[Vigor]bool{
	VigorStrong:   true,
	VigorModerate: true,
	VigorWeak:     true,
	VigorVeryWeak: true,
}

// NeedsMonitoring reports whether a newborn with this vigor should be watched.
func (v Vigor) NeedsMonitoring() bool {
	return v == VigorWeak || v == VigorVeryWeak
}

type CalvingProblem string

const (
	CalvingNone             CalvingProblem = "none"
	CalvingAssisted         CalvingProblem = "assisted"
	CalvingMalpresentation  CalvingProblem = "malpresentation"
	CalvingDystocia         CalvingProblem = "dystocia"
	CalvingCaesarean        CalvingProblem = "caesarean"
	CalvingRetainedPlacenta CalvingProblem = "retained_placenta"
)

// ValidCalvingProblems is the canonical set of accepted calving problem strings.
var ValidCalvingProblems = map[CalvingProblem]bool{
	CalvingNone:             true,
	CalvingAssisted:         true,
	CalvingMalpresentation:  true,
	CalvingDystocia:         true,
	CalvingCaesarean:        true,
	CalvingRetainedPlacenta: true,
}

type Stage string

const (
	StageEarly   Stage = "early"
	StageMid     Stage = "mid"
	StageLate    Stage = "late"
	StageOverdue Stage = "overdue"
)

type BreedingCheckStatus string

const (
	CheckNotYetDue BreedingCheckStatus = "not_yet_due"
	CheckDueSoon   BreedingCheckStatus = "due_soon"
	CheckOverdue   BreedingCheckStatus = "overdue"
)

type AlertLevel string

const (
	AlertOnTrack AlertLevel = "on_track"
	AlertDueSoon AlertLevel = "due_soon"
	AlertOverdue AlertLevel = "overdue"
)

type ReminderKind string

const (
	ReminderBreedingCheck    ReminderKind = "breeding_check"
	ReminderPregnancyCheckup ReminderKind = "pregnancy_checkup"
	ReminderExpectedBirth    ReminderKind = "expected_birth"
	ReminderDeworming        ReminderKind = "deworming"
)
