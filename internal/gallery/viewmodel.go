package gallery

import (
	"sort"
	"strings"
)

// AllTag is the synthetic tag matching every photo.
const AllTag = "all"

// SectionDisplayLimit caps how many photos a grouped section shows; the
// overflow flag tells the view to offer the full grid instead.
const SectionDisplayLimit = 9

// Section is one tag group of the grouped gallery view.
type Section struct {
	Tag     string  `json:"tag"`
	Label   string  `json:"label"`
	Total   int     `json:"total"`
	Photos  []Photo `json:"photos"`
	HasMore bool    `json:"has_more"`
}

// ViewModel derives filter and grouping views over a loaded document. It
// holds no state beyond the document itself.
type ViewModel struct {
	doc *Document
}

func NewViewModel(doc *Document) *ViewModel {
	return &ViewModel{doc: doc}
}

// AllTags returns the distinct tags across the feed, sorted, preceded by the
// synthetic "all".
func (vm *ViewModel) AllTags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, p := range vm.doc.Photos {
		for _, t := range p.TagList() {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return append([]string{AllTag}, tags...)
}

// Filter returns the photos matching the tag, preserving feed order. The
// "all" tag (or an empty tag) matches everything.
func (vm *ViewModel) Filter(activeTag string) []Photo {
	if activeTag == "" || strings.EqualFold(activeTag, AllTag) {
		return vm.doc.Photos
	}

	var photos []Photo
	for _, p := range vm.doc.Photos {
		if p.HasTag(activeTag) {
			photos = append(photos, p)
		}
	}
	return photos
}

// Grouped returns tag sections over the filtered photos: every tag when
// "all" is active, otherwise just the selected one. Sections are ordered by
// size descending then tag ascending, each capped at the display limit.
func (vm *ViewModel) Grouped(activeTag string) []Section {
	filtered := vm.Filter(activeTag)
	if len(filtered) == 0 {
		return nil
	}

	var wantedTags []string
	if activeTag == "" || strings.EqualFold(activeTag, AllTag) {
		wantedTags = vm.AllTags()[1:]
	} else {
		wantedTags = []string{activeTag}
	}

	var sections []Section
	for _, tag := range wantedTags {
		var items []Photo
		for _, p := range filtered {
			if p.HasTag(tag) {
				items = append(items, p)
			}
		}
		if len(items) == 0 {
			continue
		}

		section := Section{
			Tag:    tag,
			Label:  TitleCase(tag),
			Total:  len(items),
			Photos: items,
		}
		if len(items) > SectionDisplayLimit {
			section.Photos = items[:SectionDisplayLimit]
			section.HasMore = true
		}
		sections = append(sections, section)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		if sections[i].Total != sections[j].Total {
			return sections[i].Total > sections[j].Total
		}
		return sections[i].Tag < sections[j].Tag
	})

	return sections
}
