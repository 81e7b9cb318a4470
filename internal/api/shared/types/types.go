package types

// Order represents a sort direction on a listing
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

func (o Order) Asc() bool {
	return o == OrderAsc
}

func (o Order) Desc() bool {
	return o == OrderDesc
}

// Valid reports whether the order is a recognized direction
func (o Order) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}
