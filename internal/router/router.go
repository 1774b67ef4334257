package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	mem "petcare-backend/internal/adapters/storage/memory"
	pg "petcare-backend/internal/adapters/storage/postgres"
	"petcare-backend/internal/domain/adoptions"
	"petcare-backend/internal/domain/appointments"
	"petcare-backend/internal/domain/availability"
	"petcare-backend/internal/domain/health"
	"petcare-backend/internal/domain/pets"
	"petcare-backend/internal/domain/stories"
	"petcare-backend/internal/domain/users"
	"petcare-backend/internal/middleware"
	"petcare-backend/internal/platform/httpx"
	"petcare-backend/internal/platform/logger"
	"petcare-backend/internal/platform/uploads"
	"petcare-backend/internal/ports/auth"
)

// Stores agrupa los repositorios de todos los módulos. Se inyecta completo
// para que main y los tests elijan el backend sin tocar el wiring.
type Stores struct {
	Users        users.Repository
	Pets         pets.Repository
	Health       health.Repository
	Appointments appointments.Repository
	Availability availability.Repository
	Adoptions    adoptions.Repository
	Stories      stories.Repository
}

func MemoryStores() *Stores {
	return &Stores{
		Users:        mem.NewUsersRepo(),
		Pets:         mem.NewPetsRepo(),
		Health:       mem.NewHealthRepo(),
		Appointments: mem.NewAppointmentsRepo(),
		Availability: mem.NewAvailabilityRepo(),
		Adoptions:    mem.NewAdoptionsRepo(),
		Stories:      mem.NewStoriesRepo(),
	}
}

func PostgresStores(db *sql.DB) *Stores {
	return &Stores{
		Users:        pg.NewUsersRepo(db),
		Pets:         pg.NewPetsRepo(db),
		Health:       pg.NewHealthRepo(db),
		Appointments: pg.NewAppointmentsRepo(db),
		Availability: pg.NewAvailabilityRepo(db),
		Adoptions:    pg.NewAdoptionsRepo(db),
		Stories:      pg.NewStoriesRepo(db),
	}
}

type Options struct {
	Stores  *Stores           // requerido
	Uploads *uploads.Store    // requerido (fotos de mascotas)
	Log     logger.Logger     // opcional; sin logger no se emite request log
	Auth    auth.AuthVerifier // opcional (nil => modo dev)

	// CORS. Vacío => "*".
	AllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Debug-User-ID", "X-Debug-User-Role"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(middleware.AuthContext(opts.Auth))
	if opts.Log != nil {
		r.Use(middleware.RequestLog(opts.Log))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	st := opts.Stores

	// Services por módulo. users es hoja; pets solo depende de users;
	// el resto consume pets+users vía interfaces locales.
	usersSvc := users.NewService(st.Users)
	petsSvc := pets.NewService(st.Pets, usersSvc)
	healthSvc := health.NewService(st.Health, petsSvc, usersSvc)
	apptsSvc := appointments.NewService(st.Appointments, petsSvc, usersSvc)
	availSvc := availability.NewService(st.Availability, usersSvc)
	adoptSvc := adoptions.NewService(st.Adoptions, petsSvc, usersSvc)
	storiesSvc := stories.NewService(st.Stories, petsSvc, usersSvc)

	r.Route("/api", func(api chi.Router) {
		users.RegisterRoutes(api, usersSvc)
		pets.RegisterRoutes(api, petsSvc, opts.Uploads)
		health.RegisterRoutes(api, healthSvc)
		appointments.RegisterRoutes(api, apptsSvc)
		availability.RegisterRoutes(api, availSvc)
		adoptions.RegisterRoutes(api, adoptSvc)
		stories.RegisterRoutes(api, storiesSvc)
	})

	// Archivos subidos, servidos estáticos igual que el API original.
	uploadsFS := http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.Uploads.Dir())))
	r.Get("/uploads/*", uploadsFS.ServeHTTP)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
