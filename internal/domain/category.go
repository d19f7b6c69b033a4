package domain

// Category classifies an activity for cost reporting.
type Category string

const (
	CategoryTransport Category = "transport"
	CategoryFood      Category = "food"
	CategoryStay      Category = "stay"
	CategoryTickets   Category = "tickets"
	CategoryOther     Category = "other"
)

// categories is the fixed enumeration in declaration order.
// Cost breakdowns report categories in exactly this order.
var categories = []Category{
	CategoryTransport,
	CategoryFood,
	CategoryStay,
	CategoryTickets,
	CategoryOther,
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Valid reports whether c is a member of the fixed enumeration.
func (c Category) Valid() bool {
	for _, k := range categories {
		if c == k {
			return true
		}
	}
	return false
}
