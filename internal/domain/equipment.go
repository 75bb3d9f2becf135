package domain

// Equipment is a rentable item pool. Remaining units are never stored,
// they are recomputed from overlapping active bookings.
type Equipment struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`  // total owned units
	RentalFee float64 `json:"rentalFee"` // per hour per unit
}

// EquipmentItem is a requested or reserved quantity of one equipment pool
type EquipmentItem struct {
	EquipmentID string `json:"equipmentId"`
	Quantity    int    `json:"quantity"`
}

// EquipmentAvailability is an equipment pool with units left for a window
type EquipmentAvailability struct {
	Equipment
	Available int `json:"available"`
}

// TotalUnits sums quantities over all items
func TotalUnits(items []EquipmentItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// UnitsOf sums quantities of the given equipment id
func UnitsOf(items []EquipmentItem, equipmentID string) int {
	total := 0
	for _, item := range items {
		if item.EquipmentID == equipmentID {
			total += item.Quantity
		}
	}
	return total
}
