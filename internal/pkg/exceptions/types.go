package exceptions

import (
	"fmt"
	"labportal-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrURLParamValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamValidationFailed, paramName))
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// HTTP plumbing towards the lab gateway
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, resourceName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevDecodeResponse, resourceName))
	}
	ErrGetGatewayResource = func(err error, resourceName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevGetGatewayResource, resourceName))
	}
	ErrCreateGatewayResource = func(err error, resourceName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevCreateGatewayResource, resourceName))
	}
	ErrPatchGatewayResource = func(err error, resourceName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevPatchGatewayResource, resourceName))
	}

	// Readiness
	ErrInstrumentNotReady = func(instrumentID, status string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientInstrumentNotReady, fmt.Sprintf(constvars.ErrDevInstrumentNotReady, instrumentID, status))
	}
	ErrInstrumentUnreachable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientInstrumentUnreachable, fmt.Sprintf(constvars.ErrDevGetGatewayResource, constvars.ResourceNameInstrument))
	}

	// Reservation
	ErrReagentOutOfStock = func(reagentName string, available, required float64) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientReagentOutOfStock, fmt.Sprintf(constvars.ErrDevReagentOutOfStock, reagentName, available, required))
	}
	ErrReagentStockRejected = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientReagentOutOfStock, fmt.Sprintf(constvars.ErrDevCreateGatewayResource, constvars.ResourceNameReagentUsage))
	}
	ErrReagentAlreadyReserved = func(orderCode string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientReagentAlreadyReserved, fmt.Sprintf(constvars.ErrDevReagentAlreadyReserved, orderCode))
	}
	ErrReservationRequired = func(orderCode string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientReservationRequired, fmt.Sprintf(constvars.ErrDevReservationRequired, orderCode))
	}

	// Execution
	ErrTestAlreadyRunning = func(orderCode string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientTestAlreadyRunning, constvars.ErrDevTimerAlreadyStarted)
	}
	ErrTestNotFinished = func(phase string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientTestNotFinished, fmt.Sprintf(constvars.ErrDevTestNotFinished, phase))
	}
	ErrSessionNotFound = func(orderCode string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientSessionNotFound, fmt.Sprintf(constvars.ErrDevSessionNotFound, orderCode))
	}

	// Lifecycle / result submission
	ErrOrderNotFound = func(err error, orderCode string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientOrderNotFound, fmt.Sprintf(constvars.ErrDevGetGatewayResource, constvars.ResourceNameTestOrder))
	}
	ErrOrderNotProcessing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientOrderNotProcessing, constvars.ErrDevOrderNotProcessing)
	}
	ErrResultDuplicate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientResultDuplicate, constvars.ErrDevResultDuplicate)
	}
	ErrResultSubmit = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientResultSubmitFailed, fmt.Sprintf(constvars.ErrDevCreateGatewayResource, constvars.ResourceNameTestResult))
	}

	// Synthesis
	ErrUnsupportedTestType = func(testType string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUnsupportedTestType, testType))
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGetNoData = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGet, key))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
)
