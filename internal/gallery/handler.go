package gallery

import (
	"log/slog"
	"net/http"

	"github.com/wordhope/donation-site/internal/transport"
)

type DocumentLoader interface {
	Load() (*Document, error)
}

type Handler struct {
	transport.BaseHandler
	Loader DocumentLoader
}

func NewHandler(loader DocumentLoader, logger *slog.Logger) *Handler {
	return &Handler{
		BaseHandler: *transport.NewBaseHandler(logger),
		Loader:      loader,
	}
}

type TagsResponse struct {
	Tags []string `json:"tags"`
}

type GridResponse struct {
	Tag    string  `json:"tag"`
	Photos []Photo `json:"photos"`
}

type GroupedResponse struct {
	Tag      string    `json:"tag"`
	Sections []Section `json:"sections"`
}

// GetTags handles GET /api/v1/gallery/tags.
func (h *Handler) GetTags(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Loader.Load()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, TagsResponse{Tags: NewViewModel(doc).AllTags()})
}

// GetGallery handles GET /api/v1/gallery?tag=&view=grouped|grid.
func (h *Handler) GetGallery(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Loader.Load()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	vm := NewViewModel(doc)

	tag := r.URL.Query().Get("tag")
	if tag == "" {
		tag = AllTag
	}

	switch r.URL.Query().Get("view") {
	case "grid":
		photos := vm.Filter(tag)
		if photos == nil {
			photos = []Photo{}
		}
		h.WriteJSON(w, http.StatusOK, GridResponse{Tag: tag, Photos: photos})
	default:
		sections := vm.Grouped(tag)
		if sections == nil {
			sections = []Section{}
		}
		h.WriteJSON(w, http.StatusOK, GroupedResponse{Tag: tag, Sections: sections})
	}
}
