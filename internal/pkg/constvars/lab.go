package constvars

// Gateway resource paths, relative to the lab backend base URL.
const (
	ResourceInstrument   = "/instrument"
	ResourceReagent      = "/reagent"
	ResourceReagentUsage = "/reagent-usage"
	ResourceTestOrder    = "/test-order"
	ResourceTestResult   = "/test-result"
)

// Resource names used in error messages.
const (
	ResourceNameInstrument   = "instrument"
	ResourceNameReagent      = "reagent"
	ResourceNameReagentUsage = "reagent usage"
	ResourceNameTestOrder    = "test order"
	ResourceNameTestResult   = "test result"
)

const (
	TestTypeBlood      = "blood"
	TestTypeUrinalysis = "urinalysis"
	TestTypeFecal      = "fecal"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
)

const (
	InstrumentStatusActive      = "Active"
	InstrumentStatusAvailable   = "Available"
	InstrumentStatusInUse       = "In Use"
	InstrumentStatusMaintenance = "Maintenance"
)

const (
	ResultStatusCompleted = "completed"

	ResultFlagNormal   = "normal"
	ResultFlagAbnormal = "abnormal"

	MeasurementValueNegative = "Negative"
	MeasurementValuePositive = "Positive"
)

// Redis key prefix for the multi-screen workflow handoff
// (device check -> reagent check -> execution).
const WorkflowHandoffKeyPrefix = "workflow:handoff:"
