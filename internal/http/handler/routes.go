package handler

import (
	"database/sql"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"citycast/docs"
	"citycast/internal/service"
)

// Services are the use cases the routes are served by.
type Services struct {
	Stops      service.StopService
	Enrichment service.EnrichmentService
	Feedback   service.FeedbackService
	Payments   service.PaymentService
	Geocode    service.GeocodeService
	Weather    service.WeatherService
	Navigation service.NavigationService
	Sitemap    service.SitemapService
}

// Options tune the route set. A zero RateLimitPerMin disables rate
// limiting; a nil Gatherer leaves /metrics unregistered.
type Options struct {
	RateLimitPerMin int
	Gatherer        prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers only translate HTTP; behaviour lives in the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services, opts Options) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	if opts.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	// routes that spend third-party quota
	limited := rateLimit(opts.RateLimitPerMin)

	app.Post("/cityStops", limited, GenerateStops(svc.Stops))
	app.Get("/cityStops", ListStops(svc.Stops))
	app.Get("/stopEnrichment", limited, EnrichStop(svc.Enrichment))

	app.Post("/feedback", SubmitFeedback(svc.Feedback))
	app.Get("/feedback", ListTestimonials(svc.Feedback))

	app.Post("/payments", limited, CreatePayment(svc.Payments))
	app.Post("/geocode", limited, Geocode(svc.Geocode))
	app.Get("/weather", limited, GetWeather(svc.Weather))

	app.Post("/directions", limited, PlanRoute(svc.Navigation))
	app.Post("/navigation/progress", TrackProgress(svc.Navigation))

	app.Get("/sitemap.xml", Sitemap(svc.Sitemap))
}

func rateLimit(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return writeError(c, fiber.StatusTooManyRequests, "RATE_LIMITED", "too many requests")
		},
	})
}
