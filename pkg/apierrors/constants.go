package apierrors

const (
	MsgMissingFields      = "missingFields"
	MsgUsernameTooShort   = "usernameTooShort"
	MsgPasswordTooShort   = "passwordTooShort"
	MsgUsernameTaken      = "usernameTaken"
	MsgUnknownUsername    = "unknownUsername"
	MsgInvalidCredentials = "invalidCredentials"
	MsgFailRegister       = "failRegister"
	MsgFailLogin          = "failLogin"

	MsgMissingToken = "missingToken"
	MsgInvalidToken = "invalidToken"

	MsgTaskNotFoundOrNotOwned = "taskNotFoundOrNotOwned"
	MsgTaskNotFound           = "taskNotFound"
	MsgNotTaskOwner           = "notTaskOwner"
	MsgInvalidTaskPayload     = "invalidTaskPayload"
	MsgFailListTasks          = "failListTasks"
	MsgFailCreateTask         = "failCreateTask"
	MsgFailGetTask            = "failGetTask"
	MsgFailDeleteTask         = "failDeleteTask"
	MsgFailUpdateTask         = "failUpdateTask"

	MsgTaskAdded   = "taskAdded"
	MsgTaskDeleted = "taskDeleted"
	MsgTaskUpdated = "taskUpdated"
)
