package repository

// Factory describes access to the different domain repositories.
type Factory interface {
	Orders() OrderRepository
	Products() ProductRepository
	Staff() StaffRepository
}
