package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/petcareops/vetclinic/internal/appointment"
	apptdomain "github.com/petcareops/vetclinic/internal/appointment/domain"
	"github.com/petcareops/vetclinic/internal/config"
	"github.com/petcareops/vetclinic/internal/invoice"
	invoicedomain "github.com/petcareops/vetclinic/internal/invoice/domain"
	"github.com/petcareops/vetclinic/internal/medicalrecord"
	medrecdomain "github.com/petcareops/vetclinic/internal/medicalrecord/domain"
	"github.com/petcareops/vetclinic/internal/observability"
	"github.com/petcareops/vetclinic/internal/owner"
	ownerdomain "github.com/petcareops/vetclinic/internal/owner/domain"
	"github.com/petcareops/vetclinic/internal/pet"
	petdomain "github.com/petcareops/vetclinic/internal/pet/domain"
	"github.com/petcareops/vetclinic/internal/vaccine"
	vaccinedomain "github.com/petcareops/vetclinic/internal/vaccine/domain"
	"github.com/petcareops/vetclinic/internal/veterinarian"
	vetdomain "github.com/petcareops/vetclinic/internal/veterinarian/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	observability.Module,
	fx.Provide(newSnowflakeNode),
	fx.Provide(registerGin),
	veterinarian.Module,
	owner.Module,
	pet.Module,
	appointment.Module,
	medicalrecord.Module,
	vaccine.Module,
	invoice.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func newSnowflakeNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}

func NewEngine(log *zap.Logger, node *snowflake.Node, httpMetrics *observability.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observability.LoggingMiddleware(log.Named("http"), node))
	r.Use(observability.MetricsMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger, node *snowflake.Node, httpMetrics *observability.HTTPMetrics) *gin.Engine {
	return NewEngine(log, node, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	db         *gorm.DB
	vetSvc     vetdomain.Service
	ownerSvc   ownerdomain.Service
	petSvc     petdomain.Service
	apptSvc    apptdomain.Service
	medicalSvc medrecdomain.Service
	vaccineSvc vaccinedomain.Service
	invoiceSvc invoicedomain.Service
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	DB         *gorm.DB
	VetSvc     vetdomain.Service
	OwnerSvc   ownerdomain.Service
	PetSvc     petdomain.Service
	ApptSvc    apptdomain.Service
	MedicalSvc medrecdomain.Service
	VaccineSvc vaccinedomain.Service
	InvoiceSvc invoicedomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		db:         p.DB,
		vetSvc:     p.VetSvc,
		ownerSvc:   p.OwnerSvc,
		petSvc:     p.PetSvc,
		apptSvc:    p.ApptSvc,
		medicalSvc: p.MedicalSvc,
		vaccineSvc: p.VaccineSvc,
		invoiceSvc: p.InvoiceSvc,
	}

	svc.registerRoutes()
	return svc
}

func (s *Server) registerRoutes() {
	r := s.engine

	vets := r.Group("/veterinarians")
	{
		vets.GET("", s.ListVeterinarians)
		vets.POST("", s.CreateVeterinarian)
		vets.GET("/:id", s.GetVeterinarian)
		vets.PUT("/:id", s.ReplaceVeterinarian)
		vets.DELETE("/:id", s.DeleteVeterinarian)
		vets.GET("/:id/appointments", s.ListVeterinarianAppointments)
		vets.GET("/:id/schedule", s.GetVeterinarianSchedule)
	}

	owners := r.Group("/owners")
	{
		owners.GET("", s.ListOwners)
		owners.POST("", s.CreateOwner)
		owners.GET("/:id", s.GetOwner)
		owners.PUT("/:id", s.ReplaceOwner)
		owners.DELETE("/:id", s.DeleteOwner)
		owners.GET("/:id/pets", s.ListOwnerPets)
		owners.GET("/:id/appointments", s.ListOwnerAppointments)
	}

	pets := r.Group("/pets")
	{
		pets.GET("", s.ListPets)
		pets.POST("", s.CreatePet)
		pets.GET("/:id", s.GetPet)
		pets.PUT("/:id", s.ReplacePet)
		pets.DELETE("/:id", s.DeletePet)
		pets.GET("/:id/medical-history", s.GetPetMedicalHistory)
		pets.GET("/:id/vaccinations", s.ListPetVaccinations)
	}

	appts := r.Group("/appointments")
	{
		appts.GET("", s.ListAppointments)
		appts.POST("", s.CreateAppointment)
		appts.GET("/today", s.ListTodayAppointments)
		appts.GET("/pending", s.ListPendingAppointments)
		appts.GET("/:id", s.GetAppointment)
		appts.PUT("/:id", s.ReplaceAppointment)
		appts.DELETE("/:id", s.DeleteAppointment)
		appts.PUT("/:id/complete", s.CompleteAppointment)
		appts.PUT("/:id/cancel", s.CancelAppointment)
	}

	records := r.Group("/medical-records")
	{
		records.GET("", s.ListMedicalRecords)
		records.POST("", s.CreateMedicalRecord)
		records.GET("/:id", s.GetMedicalRecord)
	}

	vaccines := r.Group("/vaccines")
	{
		vaccines.GET("", s.ListVaccines)
		vaccines.POST("", s.CreateVaccine)
		vaccines.GET("/:id", s.GetVaccine)
		vaccines.PUT("/:id", s.ReplaceVaccine)
		vaccines.DELETE("/:id", s.DeleteVaccine)
	}

	r.POST("/vaccination-records", s.CreateVaccinationRecord)

	invoices := r.Group("/invoices")
	{
		invoices.GET("", s.ListInvoices)
		invoices.GET("/:id", s.GetInvoice)
	}

	r.GET("/reports/revenue", s.GetRevenueReport)
}
