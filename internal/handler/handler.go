package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/config"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	metrics     *requestMetrics

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	esLocale := es.New()
	uni := ut.New(esLocale, esLocale)
	trans, _ := uni.GetTranslator("es")
	if err := es_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,
		metrics:     newRequestMetrics(),

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(h.instrument)

	if h.config.Metrics.Enabled {
		h.Mux.Handle(h.config.Metrics.Path, promhttp.Handler())
	}

	// Autenticación
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// Todo lo que sigue requiere sesión iniciada
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleGerente}))
			r.Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).Delete("/", h.DeleteUser)
				r.Patch("/password", h.UpdateUserPassword)
			})
		})

		r.Route("/stores", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleGerente})).Post("/", h.CreateStore)
			r.Get("/", h.GetAllStores)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.store)
				r.Get("/", h.GetStore)
				r.With(h.RequiredRole([]domain.Role{domain.RoleGerente})).Patch("/", h.UpdateStore)
				r.With(h.RequiredRole([]domain.Role{domain.RoleGerente})).Delete("/", h.DeleteStore)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleGerente})).Post("/", h.CreateEmployee)
			r.Get("/", h.GetEmployees)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.employee)
				r.Get("/", h.GetEmployee)
				r.With(h.RequiredRole([]domain.Role{domain.RoleGerente})).Patch("/", h.UpdateEmployee)
				r.With(h.RequiredRole([]domain.Role{domain.RoleGerente})).Delete("/", h.DeleteEmployee)
				r.Put("/study-schedule", h.UpdateEmployeeStudySchedule)
			})
		})

		r.Route("/requirements/{day}", func(r chi.Router) {
			r.Use(h.weekday)
			r.Get("/", h.GetRequirement)
			r.With(h.RequiredRole([]domain.Role{domain.RoleGerente})).Put("/", h.UpsertRequirement)
		})

		r.Route("/schedules/{weekKey}", func(r chi.Router) {
			r.Use(h.weekKey)
			r.Get("/", h.GetWeekSchedules)
			r.Put("/", h.SaveWeekSchedules)
			r.Post("/generate", h.GenerateDay)
			r.With(h.employee).Get("/employees/{id}", h.GetEmployeeWeek)
		})

		r.Get("/holidays", h.GetHolidays)
	})
}
