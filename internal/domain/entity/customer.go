package entity

// Customer (zákazník). Phone is stored as a number by the database.
type Customer struct {
	ID        int64
	Phone     int64
	AddressID *int64
}
