package crop

// ===============================
// Crop Status
// ===============================

type Status string

const (
	StatusPlanning  Status = "planning"
	StatusPlanted   Status = "planted"
	StatusGrowing   Status = "growing"
	StatusHarvested Status = "harvested"
)

var statuses = []Status{StatusPlanning, StatusPlanted, StatusGrowing, StatusHarvested}

func (s Status) IsValid() bool {
	for _, v := range statuses {
		if s == v {
			return true
		}
	}
	return false
}

// InitialStatus is applied when a crop is created without one.
func InitialStatus() Status {
	return StatusPlanning
}

// CanTransition reports whether a crop may move from one status to another.
// Any valid status may follow any other; the lifecycle order is advisory.
func CanTransition(from, to Status) bool {
	return to.IsValid()
}
