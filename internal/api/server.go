package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/leetsquad/internal/service"
)

type Server struct {
	mx               *chi.Mux
	groupsService    service.GroupsServiceI
	statsService     service.StatsServiceI
	remindersService service.RemindersServiceI
	users            UserLookupI
	jwtService       JwtServiceI
}

type ServicesList struct {
	GroupsService    service.GroupsServiceI
	StatsService     service.StatsServiceI
	RemindersService service.RemindersServiceI
	Users            UserLookupI
	JwtService       JwtServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:               chi.NewMux(),
		groupsService:    servicesOptions.GroupsService,
		statsService:     servicesOptions.StatsService,
		remindersService: servicesOptions.RemindersService,
		users:            servicesOptions.Users,
		jwtService:       servicesOptions.JwtService,
	}
}

// Handler mounts the route tree and returns the root handler.
func (s *Server) Handler() http.Handler {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(s.OptionalAuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Get("/groups/invite/{inviteCode}", s.PreviewInvite)
		})
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Post("/groups", s.CreateGroup)
			r.Post("/groups/join", s.JoinGroup)
			r.Get("/groups/my-groups", s.GetMyGroups)
			r.Get("/groups/{groupID}", s.GetGroupDetail)
			r.Post("/groups/{groupID}/leave", s.LeaveGroup)

			r.Post("/stats/report", s.ReportDaily)
			r.Get("/stats/today-ranking/{groupID}", s.DayRanking)
			r.Get("/stats/week-ranking/{groupID}", s.WeekRanking)
			r.Get("/stats/user-history/{groupID}", s.UserHistory)
			r.Get("/stats/overview/{groupID}", s.Overview)

			r.Post("/reminders/notify-group/{groupID}", s.NotifyGroup)
			r.Put("/reminders/preferences", s.UpdatePreferences)
		})
	})
	return s.mx
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.Handler())
}
