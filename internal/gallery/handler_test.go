package gallery_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/wordhope/donation-site/internal"
	"github.com/wordhope/donation-site/internal/gallery"
)

type mockLoader struct {
	doc *gallery.Document
	err error
}

func (m *mockLoader) Load() (*gallery.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.doc, nil
}

var _ = ginkgo.Describe("GalleryHandler", func() {
	var (
		handler  *gallery.Handler
		loader   *mockLoader
		recorder *httptest.ResponseRecorder
	)

	ginkgo.BeforeEach(func() {
		loader = &mockLoader{doc: &gallery.Document{Photos: []gallery.Photo{
			{Src: "a.jpg", Tags: "water, outreach"},
			{Src: "b.jpg", Tags: "education"},
		}}}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		handler = gallery.NewHandler(loader, logger)
		recorder = httptest.NewRecorder()
	})

	ginkgo.Context("GetTags", func() {
		ginkgo.It("returns the tag list with all first", func() {
			req := httptest.NewRequest("GET", "/api/v1/gallery/tags", nil)

			handler.GetTags(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
			var resp gallery.TagsResponse
			gomega.Expect(json.Unmarshal(recorder.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp.Tags).To(gomega.Equal([]string{"all", "education", "outreach", "water"}))
		})
	})

	ginkgo.Context("GetGallery", func() {
		ginkgo.It("defaults to the grouped view over every photo", func() {
			req := httptest.NewRequest("GET", "/api/v1/gallery", nil)

			handler.GetGallery(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
			var resp gallery.GroupedResponse
			gomega.Expect(json.Unmarshal(recorder.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp.Tag).To(gomega.Equal("all"))
			gomega.Expect(resp.Sections).To(gomega.HaveLen(3))
		})

		ginkgo.It("returns a flat grid when asked", func() {
			req := httptest.NewRequest("GET", "/api/v1/gallery?view=grid&tag=water", nil)

			handler.GetGallery(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
			var resp gallery.GridResponse
			gomega.Expect(json.Unmarshal(recorder.Body.Bytes(), &resp)).To(gomega.Succeed())
			gomega.Expect(resp.Photos).To(gomega.HaveLen(1))
			gomega.Expect(resp.Photos[0].Src).To(gomega.Equal("a.jpg"))
		})

		ginkgo.It("returns an empty grid, not null, for an unknown tag", func() {
			req := httptest.NewRequest("GET", "/api/v1/gallery?view=grid&tag=missing", nil)

			handler.GetGallery(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(recorder.Body.String()).To(gomega.MatchJSON(`{"tag": "missing", "photos": []}`))
		})

		ginkgo.It("propagates loader failures", func() {
			loader.err = internal.NewNotFoundError("Missing gallery content", internal.ErrCodeGalleryUnavailable)
			req := httptest.NewRequest("GET", "/api/v1/gallery", nil)

			handler.GetGallery(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusNotFound))
		})
	})
})
