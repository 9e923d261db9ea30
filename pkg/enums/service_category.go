package enums

// ServiceCategory is the fixed set of service categories vendors advertise.
type ServiceCategory string

const (
	CategoryQuickService ServiceCategory = "Quick Service"
	CategoryMechanical   ServiceCategory = "Mechanical"
	CategoryBodyGlass    ServiceCategory = "Body/Glass"
	CategoryDiagnostics  ServiceCategory = "Diagnostics"
)

func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryQuickService, CategoryMechanical, CategoryBodyGlass, CategoryDiagnostics:
		return true
	}
	return false
}

func (c ServiceCategory) String() string {
	return string(c)
}
