// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"selfassessment_backend/internals/configs"
	"selfassessment_backend/internals/constants"
	middleware "selfassessment_backend/internals/middlewares/auth"
	details "selfassessment_backend/internals/route/details"
)

// SetupRoutes builds the role-scoped route groups:
//
//	/api/public  framework reads, no auth
//	/api/c       data contributors
//	/api/r       regional / federal approvers
//	/api/cc      central committee (member / chairman / secretary)
//	/api/ch      committee chairman
//	/api/u       any authenticated user
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	details.PublicRoutes(api.Group("/public"), db)

	authed := middleware.AuthJWT(middleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	contributor := api.Group("/c", authed, middleware.RequireRoles(constants.RoleDataContributor))
	details.ContributorRoutes(contributor, db)

	approver := api.Group("/r", authed, middleware.RequireRoles(constants.ApproverRoles...))
	details.ApproverRoutes(approver, db)

	committee := api.Group("/cc", authed, middleware.RequireRoles(constants.CentralCommitteeRoles...))
	details.CommitteeRoutes(committee, db)

	chairman := api.Group("/ch", authed, middleware.RequireRoles(constants.ChairmanOnly...))
	details.ChairmanRoutes(chairman, db)

	user := api.Group("/u", authed)
	details.UserRoutes(user, db)

	SetupBaseRoutes(app, db)
}
