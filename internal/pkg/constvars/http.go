package constvars

const (
	MIMETextPlain       = "text/plain"
	MIMEApplicationJSON = "application/json"
	MIMEApplicationPDF  = "application/pdf"

	HeaderContentType        = "Content-Type"
	HeaderAccept             = "Accept"
	HeaderContentDisposition = "Content-Disposition"
	HeaderAuthorization      = "Authorization"
	HeaderXRequestID         = "X-Request-ID"
)

const (
	StatusOK      = 200
	StatusCreated = 201

	StatusBadRequest      = 400
	StatusUnauthorized    = 401
	StatusForbidden       = 403
	StatusNotFound        = 404
	StatusConflict        = 409
	StatusGone            = 410
	StatusTooManyRequests = 429

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)
