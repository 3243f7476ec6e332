package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "isClientRequestID"
	CONTEXT_PHONE_NUMBER_KEY         contextKey = "phoneNumber"
	CONTEXT_USERNAME_KEY             contextKey = "username"
	CONTEXT_USER_ID_KEY              contextKey = "userID"
)

const (
	MongoCollectionUsers      = "users"
	MongoCollectionProducts   = "products"
	MongoCollectionCategories = "categories"
	MongoCollectionOrders     = "orders"
	MongoCollectionExpoTokens = "expo_tokens"
)

// Order lifecycle.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
	OrderStatusExpired   = "EXPIRED"
)

const (
	PaymentMethodCashOnDelivery = "CASH_ON_DELIVERY"
	PaymentMethodOnline         = "ONLINE"
	PaymentMethodUPI            = "UPI"
)

// Catalog page sizes. The storefront listing and the legacy bulk listing
// page differently.
const (
	ProductsPageSize    = 30
	AllProductsPageSize = 100
)

// Product sort keys accepted on the storefront listing.
const (
	ProductSortRelevance       = "relevance"
	ProductSortPopularity      = "popularity"
	ProductSortDiscountLowHigh = "discountPriceLowToHigh"
	ProductSortDiscountHighLow = "discountPriceHighToLow"
	ProductSortNewest          = "newest"
)

// Redis key prefixes.
const (
	RedisKeyOTPCooldownPrefix = "otp:cooldown:"
	RedisKeyCategoriesCache   = "catalog:categories:all"
)

const AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
