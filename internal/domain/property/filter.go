package property

// Pagination defaults for property search.
const (
	DefaultPage         = 1
	DefaultLimit        = 10
	DefaultRadiusMeters = 5000
)

// SearchFilter is the structured predicate derived from the raw search query.
// Nil fields are absent from the predicate entirely, they never collapse to
// zero-valued bounds.
type SearchFilter struct {
	Location     string
	PriceMin     *float64
	PriceMax     *float64
	NumBedrooms  *int
	NumBathrooms *int
	Status       *Status
	PropertyType *PropertyType

	// MinSquareMeters is a floor, not an exact match.
	MinSquareMeters *float64
	YearBuilt       *int

	// Proximity search applies only when both Latitude and Longitude are set.
	Latitude     *float64
	Longitude    *float64
	RadiusMeters float64

	Page  int
	Limit int
}

func (f SearchFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

func (f SearchFilter) HasProximity() bool {
	return f.Latitude != nil && f.Longitude != nil
}

// Updates holds the partial-update field set. Nil means "leave unchanged".
type Updates struct {
	Title        *string
	Description  *string
	Price        *float64
	Address      *string
	PropertyType *PropertyType
	Status       *Status
	NumBedrooms  *int
	NumBathrooms *int
	SquareMeters *float64
	YearBuilt    *int
	Latitude     *float64
	Longitude    *float64
}

// Empty reports whether no field is set; an empty update is a no-op.
func (u Updates) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Price == nil &&
		u.Address == nil && u.PropertyType == nil && u.Status == nil &&
		u.NumBedrooms == nil && u.NumBathrooms == nil && u.SquareMeters == nil &&
		u.YearBuilt == nil && u.Latitude == nil && u.Longitude == nil
}
