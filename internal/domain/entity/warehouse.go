package entity

// Warehouse (sklad) of the retail chain.
type Warehouse struct {
	ID        int64
	Name      string
	Capacity  *int64
	Phone     *int64
	AddressID *int64
}

// Supermarket of the retail chain.
type Supermarket struct {
	ID        int64
	Name      string
	Phone     *int64
	AddressID *int64
}
