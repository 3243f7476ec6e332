package constvars

// Client-facing messages. These are the only strings that leave the server;
// dev messages stay in logs.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please login first"
	ErrClientOTPSendFailed                 = "Failed to send OTP, please try again later"
	ErrClientOTPVerificationFailed         = "OTP verification failed"
	ErrClientOTPTokenInvalidOrExpired      = "OTP session is invalid or expired, please request a new OTP"
	ErrClientOTPRequestTooSoon             = "An OTP was sent recently, please wait before requesting another"
	ErrClientProductNotFound               = "Product not found"
	ErrClientInvalidProductID              = "Invalid product ID"
	ErrClientCategoryNotFound              = "Category not found"
	ErrClientOrderNotFound                 = "Order not found"
	ErrClientNotYourOrders                 = "You can only view your own orders"
	ErrClientInvalidOrderStatus            = "Invalid order status"
	ErrClientUpstreamUnavailable           = "Upstream service is unavailable, please try again later"
)

// Dev messages.
const (
	ErrDevValidationFailed          = "Request validation failed"
	ErrDevCannotParseJSON           = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON         = "Failed to marshal value to JSON"
	ErrDevAuthTokenMissing          = "Authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired = "Token is invalid or has expired"
	ErrDevAuthGenerateToken         = "Failed to generate signed token"
	ErrDevOTPGatewayDispatchFailed  = "OTP gateway failed to dispatch challenge"
	ErrDevOTPGatewayVerifyFailed    = "OTP gateway failed to verify challenge"
	ErrDevOTPCodeMismatch           = "Submitted OTP code did not match"
	ErrDevOTPCooldownActive         = "OTP dispatch cooldown is active for this phone number"
	ErrDevPhoneNumberMismatch       = "Authenticated phone number does not match requested phone number"

	ErrDevDBFailedToFindDocument     = "Failed to find document in database"
	ErrDevDBFailedToInsertDocument   = "Failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "Failed to update document in database"
	ErrDevDBFailedToIterateDocuments = "Failed to iterate documents from database"
	ErrDevDBFailedToCountDocuments   = "Failed to count documents in database"
	ErrDevDBStringNotObjectID        = "Provided string is not a valid ObjectID"
	ErrDevDBDocumentNotFound         = "Document not found in database"

	ErrDevRedisSetData    = "Failed to set data to redis"
	ErrDevRedisGetData    = "Failed to get data from redis"
	ErrDevRedisDeleteData = "Failed to delete data from redis"

	ErrDevRabbitMQPublishMessage = "Failed to publish message to queue: %s"

	ErrDevMinioFailedToCreateObject = "Failed to create object in bucket: %s"

	ErrDevCreateHTTPRequest = "Failed to create HTTP request"
	ErrDevSendHTTPRequest   = "Failed to send HTTP request"

	ErrDevPDFRenderFailed = "Failed to render PDF document"
)
