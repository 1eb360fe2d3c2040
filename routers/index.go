// Package routers registers the HTTP surface of the verification service.
package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/towoju5/bridge-verification-system-sub001/controllers"
	"github.com/towoju5/bridge-verification-system-sub001/controllers/wizard"
	"github.com/towoju5/bridge-verification-system-sub001/routers/middleware"
	"github.com/towoju5/bridge-verification-system-sub001/services/refdata"
	"github.com/towoju5/bridge-verification-system-sub001/services/submission"
)

// Routes builds the router over an already wired engine. Creating a
// submission is open; everything addressing an existing submission
// requires the session token minted at creation.
func Routes(engine *submission.Engine, refdataProvider refdata.Provider) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	ctrl := controllers.NewController(refdataProvider)
	wizardCtrl := wizard.NewWizardController(engine, refdataProvider)

	v1 := router.Group("/v1")
	v1.GET("/reference/:list", ctrl.GetReferenceList)
	v1.POST("/submissions", wizardCtrl.CreateSubmission)

	scoped := v1.Group("/submissions/:id", middleware.SessionMiddleware())
	scoped.GET("/step", wizardCtrl.GetStep)
	scoped.POST("/steps/:step", wizardCtrl.SaveStep)
	scoped.POST("/submit", wizardCtrl.Submit)

	return router
}
