package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"numeric":   "must be a number",
	"oneof":     "must be one of [%s]",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"lt":        "must be less than %s",
	"lte":       "must be less than or equal to %s",
	"uuid":      "must be a valid UUID",
	"test_type": "must be one of 'blood', 'urinalysis' or 'fecal'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInstrumentNotReady            = "the selected instrument is not available for testing"
	ErrClientInstrumentUnreachable         = "could not verify the instrument status, please retry"
	ErrClientReagentOutOfStock             = "one or more reagents are out of stock, please restock before testing"
	ErrClientReagentAlreadyReserved        = "reagents were already reserved for this order"
	ErrClientReservationRequired           = "reagents must be reserved before the test can start"
	ErrClientTestAlreadyRunning            = "a test is already running for this order"
	ErrClientTestNotFinished               = "the test has not finished yet"
	ErrClientSessionNotFound               = "no active test session for this order"
	ErrClientOrderNotProcessing            = "the order is not in processing state"
	ErrClientResultDuplicate               = "a result already exists for this order"
	ErrClientResultSubmitFailed            = "failed to save the test result, your data is kept so you can retry"
	ErrClientOrderNotFound                 = "the test order could not be found"
)

// Error messages for developers
const (
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON payload"
	ErrDevCannotMarshalJSON        = "cannot marshal payload to JSON"
	ErrDevBuildRequest             = "failed to build request"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevDecodeResponse           = "failed to decode %s response"
	ErrDevGetGatewayResource       = "failed to get %s from lab gateway"
	ErrDevCreateGatewayResource    = "failed to create %s on lab gateway"
	ErrDevPatchGatewayResource     = "failed to patch %s on lab gateway"
	ErrDevURLParamValidationFailed = "URL parameter %s validation failed"
	ErrDevInstrumentNotReady       = "instrument %s reported status %q"
	ErrDevReagentOutOfStock        = "reagent %q has insufficient stock: available %.2f, required %.2f"
	ErrDevReagentAlreadyReserved   = "reservation already issued for order %s"
	ErrDevReservationRequired      = "timer start refused, no completed reservation for order %s"
	ErrDevTimerAlreadyStarted      = "phase timer already started"
	ErrDevTestNotFinished          = "phase is %q, result synthesis incomplete"
	ErrDevSessionNotFound          = "no execution session for order %s"
	ErrDevOrderNotProcessing       = "gateway rejected result: order not in processing state"
	ErrDevResultDuplicate          = "gateway rejected result: duplicate result for order"
	ErrDevRedisSet                 = "failed to set redis key"
	ErrDevRedisGet                 = "failed to get redis key %s"
	ErrDevRedisDelete              = "failed to delete redis key"
	ErrDevUnsupportedTestType      = "unsupported test type %q"
)

const ResponseUnknown = "unknown"
