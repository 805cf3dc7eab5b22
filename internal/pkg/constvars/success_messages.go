package constvars

const (
	CheckReadinessSuccessMessage    = "Successfully checked instrument readiness"
	ReserveReagentsSuccessMessage   = "Successfully reserved reagents for the order"
	StartExecutionSuccessMessage    = "Successfully started the test execution"
	GetExecutionSuccessMessage      = "Successfully fetched the execution state"
	SaveResultSuccessMessage        = "Successfully saved the test result"
	TeardownExecutionSuccessMessage = "Successfully closed the test session"
)
