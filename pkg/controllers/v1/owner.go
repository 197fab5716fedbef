package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/household-finance/backend/pkg/httputil"
	"github.com/household-finance/backend/pkg/store"
	"github.com/rs/zerolog/log"
)

// OwnerHeader identifies the acting owner of a request.
const OwnerHeader = "X-Owner-ID"

const ownersKey = "hf-owners"

// OwnerMiddleware resolves the owners of the request from the X-Owner-ID
// header. Requests without a valid owner are rejected.
func (co Controller) OwnerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(OwnerHeader)
		owner, err := httputil.UUIDFromString(header)
		if err != nil || header == "" {
			fail(c, errOwnerHeader)
			return
		}

		owners, err := co.store.Owners(c.Request.Context(), owner)
		if err != nil {
			fail(c, err)
			return
		}

		log.Debug().Str("owner", owners.Owner.String()).Bool("linked", owners.Linked != nil).Msg("owner")
		c.Set(ownersKey, owners)
		c.Next()
	}
}

// owners returns the owners set by the OwnerMiddleware.
func owners(c *gin.Context) store.Owners {
	return c.MustGet(ownersKey).(store.Owners)
}
