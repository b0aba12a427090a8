package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Profiles() ProfileRepository
	Products() ProductRepository
	RFQs() RFQRepository
	Quotes() QuoteRepository
	Contracts() ContractRepository
	Orders() OrderRepository
	Notifications() NotificationRepository
}
