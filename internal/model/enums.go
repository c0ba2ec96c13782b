package model

type BloodType string

const (
	APos  BloodType = "A+"
	ANeg  BloodType = "A-"
	BPos  BloodType = "B+"
	BNeg  BloodType = "B-"
	ABPos BloodType = "AB+"
	ABNeg BloodType = "AB-"
	OPos  BloodType = "O+"
	ONeg  BloodType = "O-"
)

// BloodTypes in display order.
var BloodTypes = []BloodType{APos, ANeg, BPos, BNeg, ABPos, ABNeg, OPos, ONeg}

func (b BloodType) Valid() bool {
	for _, t := range BloodTypes {
		if b == t {
			return true
		}
	}
	return false
}

// Level is a bank's stock level for one blood type.
type Level string

const (
	LevelCritical Level = "Critical"
	LevelLow      Level = "Low"
	LevelMedium   Level = "Medium"
	LevelHigh     Level = "High"
)

func (l Level) Rank() int {
	switch l {
	case LevelCritical:
		return 1
	case LevelLow:
		return 2
	case LevelMedium:
		return 3
	case LevelHigh:
		return 4
	}
	return 0
}

const (
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"

	RequestPending = "Pending"
	CampPending    = "pending"
)

const (
	UrgencyCritical  = "critical"
	UrgencyUrgent    = "urgent"
	UrgencyStandard  = "standard"
	UrgencyScheduled = "scheduled"
)
