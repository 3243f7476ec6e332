package constvars

const (
	OTPSentSuccess          = "OTP sent successfully"
	OTPVerifiedSuccess      = "OTP verified and user logged in"
	UserAlreadyLoggedIn     = "User already logged in"
	ExpoTokenSavedSuccess   = "Expo token saved successfully"
	OrderCreatedSuccess     = "Order created successfully"
	OrderStatusUpdated      = "Order status updated successfully"
	ProductsFetchedSuccess  = "Products fetched successfully"
	ProductFetchedSuccess   = "Product fetched successfully"
	CategoriesFetchSuccess  = "Categories fetched successfully"
	CategoryFetchedSuccess  = "Category fetched successfully"
	OrdersFetchedSuccess    = "Orders fetched successfully"
)
