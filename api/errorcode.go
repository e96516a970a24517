package api

import "github.com/roadguard/roadguard-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid email or password",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",

		1100: store.ErrEmailTaken.Error(),
		1101: "account not found",
		1102: "forbidden",

		1200: store.ErrMissingServiceType.Error(),
		1201: store.ErrRequestNotFound.Error(),
		1202: store.ErrInvalidStatus.Error(),
		1203: store.ErrInvalidMechanic.Error(),
		1204: store.ErrRequestClosed.Error(),
		1205: store.ErrCommentNotAllowed.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidCredentials         = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters = errorJSON(1010)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)
	errorForbidden       = errorJSON(1102)

	errorMissingServiceType = errorJSON(1200)
	errorRequestNotFound    = errorJSON(1201)
	errorInvalidStatus      = errorJSON(1202)
	errorInvalidMechanic    = errorJSON(1203)
	errorRequestClosed      = errorJSON(1204)
	errorCommentNotAllowed  = errorJSON(1205)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
