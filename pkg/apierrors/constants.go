package apierrors

const (
	MsgInvalidID      = "invalidID"
	MsgInvalidPayload = "invalidPayload"
	MsgMissingUser    = "missingUser"
	MsgInternalError  = "internalError"

	MsgCategoryNotFound    = "categoryNotFound"
	MsgTimeWindowNotFound  = "timeWindowNotFound"
	MsgDayTemplateNotFound = "dayTemplateNotFound"
	MsgTaskNotFound        = "taskNotFound"
	MsgPlanNotFound        = "planNotFound"

	MsgForbidden        = "forbidden"
	MsgNameConflict     = "nameConflict"
	MsgInvalidTimeRange = "invalidTimeRange"
	MsgCategoryMismatch = "categoryMismatch"
	MsgPlanExists       = "planExists"
	MsgAlreadyReviewed  = "alreadyReviewed"
	MsgDataMissing      = "dataMissing"
	MsgGenerationFailed = "generationFailed"
)
