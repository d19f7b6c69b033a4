package domain

// Defaults applied when a trip is created or decoded without these fields.
const (
	DefaultCurrency       = "VND"
	DefaultTimezone       = "Asia/Ho_Chi_Minh"
	DefaultNumberOfPeople = 2
)

// DefaultCostSettings returns the settings every new trip starts with.
func DefaultCostSettings() CostSettings {
	return CostSettings{SplitMode: SplitEqual}
}
