package httputil

import "github.com/household-finance/backend/pkg/models"

var (
	ErrInvalidBody      = models.Validationf("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = models.Validationf("the request body must not be empty")
	ErrInvalidUUID      = models.Validationf("the specified resource ID is not a valid UUID")
)
