package v1

import (
	"github.com/gin-gonic/gin"
	google_uuid "github.com/google/uuid"
	"github.com/household-finance/backend/internal/uuid"
	"github.com/household-finance/backend/pkg/httputil"
)

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type URIMonth struct {
	Month string `uri:"month" example:"2024-01"` // Year and month
}

// Response is the envelope for a single resource.
type Response[T any] struct {
	Data  *T      `json:"data"`                                                          // The resource
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// ListResponse is the envelope for a list of resources.
type ListResponse[T any] struct {
	Data  []T     `json:"data"`                                                          // The resources
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func newResponse[T any](data T) Response[T] {
	return Response[T]{Data: &data}
}

// newListResponse returns the response for data. A nil slice is sent as an empty list.
func newListResponse[T any](data []T) ListResponse[T] {
	if data == nil {
		data = make([]T, 0)
	}
	return ListResponse[T]{Data: data}
}

// bindID binds the ID of the resource from the URI. If it is invalid, the
// error response is sent and false is returned.
func bindID(c *gin.Context) (google_uuid.UUID, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		fail(c, httputil.ErrInvalidUUID)
		return google_uuid.Nil, false
	}

	return uri.ID.UUID, true
}
