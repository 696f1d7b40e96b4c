package models

// Default order timings applied when a restaurant is inserted without
// explicit opening hours.
const (
	DefaultOpeningTime = "09:00 AM"
	DefaultClosingTime = "09:00 PM"
)

// Location is a restaurant's nested location sub-object. Lat and Long are
// pointers because 0 is a valid coordinate and must be distinguishable from
// "not recorded".
type Location struct {
	Address string
	Lat     *float64
	Long    *float64
}

// OrderTimings is the nested opening-hours sub-object. Times are kept as the
// original free-form strings ("09:00 AM"), not parsed.
type OrderTimings struct {
	Start string
	End   string
}

// Restaurant represents a place to eat.
//
// MenuIDs holds references to externally-owned menu records. The restaurant
// only tracks set membership; it does not own the menus' lifecycle. A
// restaurant without menus has a nil slice, and backends omit the field
// entirely rather than storing an empty set.
type Restaurant struct {
	ID            string
	Name          string
	ContactNumber string
	OrderTimings  OrderTimings
	Location      Location
	MenuIDs       []string
}

// RestaurantUpdate describes a partial update. Nil fields are left untouched
// in storage; non-nil fields are written, including zero values.
//
// MenuIDs, when non-nil, replaces the stored set wholesale. Use the append
// operation for set-union additions.
type RestaurantUpdate struct {
	Name          *string
	Address       *string
	ContactNumber *string
	StartTime     *string
	EndTime       *string
	Lat           *float64
	Long          *float64
	MenuIDs       *[]string
}

// IsZero reports whether the update carries no fields at all.
func (u RestaurantUpdate) IsZero() bool {
	return u.Name == nil && u.Address == nil && u.ContactNumber == nil &&
		u.StartTime == nil && u.EndTime == nil &&
		u.Lat == nil && u.Long == nil && u.MenuIDs == nil
}
