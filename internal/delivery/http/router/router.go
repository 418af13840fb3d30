// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"gestao/internal/delivery/http/middleware"
	"gestao/internal/delivery/http/router/handler"
	"gestao/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	AthleteHandler    *handler.AthleteHandler
	PsychologyHandler *handler.PsychologyHandler
	SocialHandler     *handler.SocialHandler
	PedagogyHandler   *handler.PedagogyHandler
	ReportHandler     *handler.ReportHandler
	AdminHandler      *handler.AdminHandler

	SessionMiddleware *middleware.SessionMiddleware
	MetricsHandler    http.Handler `name:"metricsHandler"`
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application. Department
// groups are gated by the route guard; an empty RequireRoles admits any
// authenticated role.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.params.MetricsHandler))

	// Session lifecycle. These stay reachable in every auth state; the
	// pending-approval screen polls /auth/session and /auth/refresh.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.params.AuthHandler.SignUp)
		authGroup.POST("/signin", r.params.AuthHandler.SignIn)
		authGroup.POST("/signout", r.params.AuthHandler.SignOut)
		authGroup.GET("/session", r.params.AuthHandler.Session)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
	}

	// Department resources live under /api; the session lifecycle above
	// stays at the root so it is reachable in every auth state.
	api := e.Group("/api")

	// Athlete registry: any approved role.
	athleteGroup := api.Group("/athletes")
	athleteGroup.Use(r.params.SessionMiddleware.RequireRoles())
	{
		athleteGroup.POST("", r.params.AthleteHandler.CreateAthlete)
		athleteGroup.GET("", r.params.AthleteHandler.ListAthletes)
		athleteGroup.GET("/:id", r.params.AthleteHandler.GetAthlete)
		athleteGroup.PUT("/:id", r.params.AthleteHandler.UpdateAthlete)
		athleteGroup.DELETE("/:id", r.params.AthleteHandler.DeactivateAthlete)
	}

	// Psychology department.
	psychologyGroup := api.Group("/psychology")
	psychologyGroup.Use(r.params.SessionMiddleware.RequireRoles(
		entity.RoleAdmin, entity.RolePsicologo, entity.RoleGestor))
	{
		psychologyGroup.POST("/interventions", r.params.PsychologyHandler.CreateIntervention)
		psychologyGroup.GET("/interventions", r.params.PsychologyHandler.ListInterventions)
		psychologyGroup.GET("/interventions/:id", r.params.PsychologyHandler.GetIntervention)
		psychologyGroup.PUT("/interventions/:id", r.params.PsychologyHandler.UpdateIntervention)
		psychologyGroup.DELETE("/interventions/:id", r.params.PsychologyHandler.DeleteIntervention)
	}

	// Social work department.
	socialGroup := api.Group("/social")
	socialGroup.Use(r.params.SessionMiddleware.RequireRoles(
		entity.RoleAdmin, entity.RoleAssistenteSocial, entity.RoleGestor))
	{
		socialGroup.POST("/anamneses", r.params.SocialHandler.CreateAnamnesis)
		socialGroup.GET("/anamneses/:id", r.params.SocialHandler.GetAnamnesis)
		socialGroup.PUT("/anamneses/:id", r.params.SocialHandler.UpdateAnamnesis)
		socialGroup.DELETE("/anamneses/:id", r.params.SocialHandler.DeleteAnamnesis)
		socialGroup.GET("/athletes/:athleteID/anamneses", r.params.SocialHandler.ListAnamneses)

		socialGroup.POST("/contacts", r.params.SocialHandler.CreateContact)
		socialGroup.GET("/contacts", r.params.SocialHandler.ListContacts)
		socialGroup.PUT("/contacts/:id", r.params.SocialHandler.UpdateContact)
		socialGroup.DELETE("/contacts/:id", r.params.SocialHandler.DeleteContact)

		socialGroup.POST("/referrals", r.params.SocialHandler.CreateReferral)
		socialGroup.GET("/referrals", r.params.SocialHandler.ListReferrals)
		socialGroup.PUT("/referrals/:id", r.params.SocialHandler.UpdateReferral)
		socialGroup.DELETE("/referrals/:id", r.params.SocialHandler.DeleteReferral)
	}

	// Pedagogy department.
	pedagogyGroup := api.Group("/pedagogy")
	pedagogyGroup.Use(r.params.SessionMiddleware.RequireRoles(
		entity.RoleAdmin, entity.RolePedagogo, entity.RoleGestor))
	{
		pedagogyGroup.POST("/schools", r.params.PedagogyHandler.CreateSchool)
		pedagogyGroup.GET("/schools", r.params.PedagogyHandler.ListSchools)
		pedagogyGroup.PUT("/schools/:id", r.params.PedagogyHandler.UpdateSchool)

		pedagogyGroup.POST("/enrollments", r.params.PedagogyHandler.CreateEnrollment)
		pedagogyGroup.GET("/enrollments", r.params.PedagogyHandler.ListEnrollments)
		pedagogyGroup.PUT("/enrollments/:id", r.params.PedagogyHandler.UpdateEnrollment)

		pedagogyGroup.POST("/records", r.params.PedagogyHandler.CreateSchoolRecord)
		pedagogyGroup.GET("/records", r.params.PedagogyHandler.ListSchoolRecords)
		pedagogyGroup.PUT("/records/:id", r.params.PedagogyHandler.UpdateSchoolRecord)
		pedagogyGroup.DELETE("/records/:id", r.params.PedagogyHandler.DeleteSchoolRecord)
	}

	// Reports: any approved role.
	reportGroup := api.Group("/reports")
	reportGroup.Use(r.params.SessionMiddleware.RequireRoles())
	{
		reportGroup.GET("/summary", r.params.ReportHandler.GetSummary)
	}

	// Administration.
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.params.SessionMiddleware.RequireRoles(entity.RoleAdmin))
	{
		adminGroup.GET("/users", r.params.AdminHandler.ListUsers)
		adminGroup.PUT("/users/:identityID/role", r.params.AdminHandler.AssignRole)
		adminGroup.DELETE("/users/:identityID/role", r.params.AdminHandler.RemoveRole)
		adminGroup.PUT("/profiles/:profileID/active", r.params.AdminHandler.SetProfileActive)

		adminGroup.GET("/periods", r.params.AdminHandler.ListPeriods)
		adminGroup.POST("/periods", r.params.AdminHandler.CreatePeriod)
		adminGroup.POST("/periods/:id/close", r.params.AdminHandler.ClosePeriod)
	}
}
