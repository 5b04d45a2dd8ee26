package gallery_test

import (
	"net/http"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wordhope/donation-site/internal"
	"github.com/wordhope/donation-site/internal/gallery"
)

var _ = Describe("GalleryLoader", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	writeFeed := func(content string) {
		Expect(os.WriteFile(filepath.Join(dir, "gallery.json"), []byte(content), 0o644)).To(Succeed())
	}

	It("loads a well-formed feed", func() {
		writeFeed(`{"photos": [{"src": "a.jpg", "tags": "water"}]}`)

		doc, err := gallery.NewLoader(dir).Load()

		Expect(err).ToNot(HaveOccurred())
		Expect(doc.Photos).To(HaveLen(1))
		Expect(doc.Photos[0].Src).To(Equal("a.jpg"))
	})

	It("reflects feed edits without a restart", func() {
		writeFeed(`{"photos": []}`)
		loader := gallery.NewLoader(dir)

		doc, err := loader.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(doc.Photos).To(BeEmpty())

		writeFeed(`{"photos": [{"src": "new.jpg", "tags": "water"}]}`)

		doc, err = loader.Load()
		Expect(err).ToNot(HaveOccurred())
		Expect(doc.Photos).To(HaveLen(1))
	})

	It("classifies a missing feed as not found", func() {
		_, err := gallery.NewLoader(dir).Load()

		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.StatusCode).To(Equal(http.StatusNotFound))
		Expect(appErr.Code).To(Equal(internal.ErrCodeGalleryUnavailable))
	})

	It("classifies a malformed feed as an internal error", func() {
		writeFeed(`{"photos": [`)

		_, err := gallery.NewLoader(dir).Load()

		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.StatusCode).To(Equal(http.StatusInternalServerError))
	})
})
