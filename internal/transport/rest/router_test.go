package rest_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wordhope/donation-site/internal"
	"github.com/wordhope/donation-site/internal/contact"
	"github.com/wordhope/donation-site/internal/donation"
	"github.com/wordhope/donation-site/internal/gallery"
	"github.com/wordhope/donation-site/internal/transport/rest"
)

type stubGateway struct {
	err error
}

func (g *stubGateway) CreateCheckoutSession(ctx context.Context, spec donation.SessionSpec) (*donation.CheckoutSession, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &donation.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.example.com/pay/cs_test_1"}, nil
}

var _ = Describe("Router", func() {
	var (
		router  *chi.Mux
		gateway *stubGateway
		cfg     *internal.Config
	)

	BeforeEach(func() {
		contentDir := GinkgoT().TempDir()
		Expect(os.WriteFile(
			filepath.Join(contentDir, "gallery.json"),
			[]byte(`{"photos": [{"src": "a.jpg", "tags": "water"}]}`),
			0o644,
		)).To(Succeed())

		cfg = &internal.Config{
			Server: internal.ServerConfig{
				Port:              8080,
				AllowedOrigins:    "*",
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       10 * time.Second,
			},
			Payment: internal.PaymentConfig{
				SecretKey:   "sk_test_1",
				ProductName: "Word Hope International",
				Timeout:     15 * time.Second,
			},
			Content: internal.ContentConfig{
				Dir:    contentDir,
				WebDir: GinkgoT().TempDir(),
			},
		}

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		gateway = &stubGateway{}

		donationService := donation.NewService(gateway, nil, "https://wordhope.example.org", cfg.Payment.ProductName, logger)
		galleryLoader := gallery.NewLoader(cfg.Content.Dir)

		router = chi.NewRouter()
		rest.RegisterAllRoutes(
			router,
			donation.NewHandler(donationService, logger),
			gallery.NewHandler(galleryLoader, logger),
			contact.NewHandler(contact.NewService(nil, logger), logger),
			rest.NewHealthHandler(cfg.Content.Dir, true),
			cfg,
			logger,
		)
	})

	Describe("POST /create-checkout-session", func() {
		It("creates a session end to end", func() {
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/create-checkout-session", strings.NewReader(`{"amount": 50}`))

			router.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{"url": "https://checkout.example.com/pay/cs_test_1"}`))
		})

		It("rejects an invalid amount with the exact wire message", func() {
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/create-checkout-session", strings.NewReader(`{}`))

			router.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(recorder.Body.String()).To(MatchJSON(`{"error": "Invalid donation amount."}`))
		})

		It("answers OPTIONS with 200", func() {
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest("OPTIONS", "/create-checkout-session", nil)

			router.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("refuses other methods", func() {
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/create-checkout-session", nil)

			router.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusMethodNotAllowed))
		})
	})

	Describe("gallery endpoints", func() {
		It("serves the grouped gallery", func() {
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/v1/gallery", nil)

			router.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("serves the tag list", func() {
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/v1/gallery/tags", nil)

			router.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{"tags": ["all", "water"]}`))
		})

		It("serves the raw feed as a static file", func() {
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/content/gallery.json", nil)

			router.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring("a.jpg"))
		})
	})

	Describe("health endpoints", func() {
		It("answers the liveness probe", func() {
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/v1/ping", nil)

			router.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("reports healthy when the feed exists and payment is configured", func() {
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/v1/health", nil)

			router.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(`"status":"healthy"`))
		})
	})

	Describe("contact endpoint", func() {
		It("accepts a valid submission", func() {
			recorder := httptest.NewRecorder()
			body := `{"topic": "donation", "name": "Jamie", "email": "jamie@example.com", "message": "Hello"}`
			req := httptest.NewRequest("POST", "/api/v1/contact", strings.NewReader(body))

			router.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})
})
