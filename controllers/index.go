// Package controllers exposes the shared, unauthenticated endpoints.
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/towoju5/bridge-verification-system-sub001/services/refdata"
	u "github.com/towoju5/bridge-verification-system-sub001/utils"
)

// Controller is the controller for shared endpoints
type Controller struct {
	refdata refdata.Provider
}

// NewController creates a controller over the given reference-data
// provider.
func NewController(refdataProvider refdata.Provider) *Controller {
	return &Controller{refdata: refdataProvider}
}

// GetReferenceList returns one ordered reference-data list. Per-country
// identification types are addressed as "id_types_<ALPHA2>".
func (ctrl *Controller) GetReferenceList(ctx *gin.Context) {
	listName := strings.TrimSpace(ctx.Param("list"))
	if listName == "" {
		u.APIResponse(ctx, http.StatusBadRequest, "error", "List name is required", nil)
		return
	}

	items, err := ctrl.refdata.Lookup(ctx, listName)
	if err != nil {
		u.APIResponse(ctx, http.StatusNotFound, "error", "Unknown reference list", nil)
		return
	}

	u.APIResponse(ctx, http.StatusOK, "success", "List retrieved", items)
}
