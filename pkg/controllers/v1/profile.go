package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/household-finance/backend/pkg/httputil"
)

// ProfileEditable links the owner to a partner.
type ProfileEditable struct {
	LinkedOwnerID *uuid.UUID `json:"linkedOwnerId" example:"3f1c2d4e-5a6b-7c8d-9e0f-1a2b3c4d5e6f"` // The partner, null to unlink
}

// RegisterProfileRoutes registers the routes for the profile with
// the RouterGroup that is passed.
func (co Controller) RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProfile)
	r.PUT("", co.SetProfile)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Success		204
// @Router			/v1/profile [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsPut(c)
}

// @Summary		Set profile
// @Description	Links the owner to a partner. The resources of a linked partner can be read, but not changed.
// @Tags			Profile
// @Produce		json
// @Success		200		{object}	Response[models.Profile]
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/profile [put]
func (co Controller) SetProfile(c *gin.Context) {
	var editable ProfileEditable
	if err := httputil.BindData(c, &editable); err != nil {
		fail(c, err)
		return
	}

	profile, err := co.store.SetLinkedOwner(c.Request.Context(), owners(c).Owner, editable.LinkedOwnerID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResponse(profile))
}
