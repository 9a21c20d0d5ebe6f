package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/url"
	"sort"
	"strings"

	"hackathon-demo-api/internal/models"
)

// fallbackImageURL is used for keywords without a curated image list
const fallbackImageURL = "https://picsum.photos/seed/%s/600/400"

// natureImages maps lowercase keywords to curated image URLs
var natureImages = map[string][]string{
	"tree": {
		"https://picsum.photos/id/1011/600/400",
		"https://picsum.photos/id/102/600/400",
		"https://picsum.photos/id/104/600/400",
	},
	"river": {
		"https://picsum.photos/id/1056/600/400",
		"https://picsum.photos/id/106/600/400",
		"https://picsum.photos/id/1074/600/400",
	},
	"mountain": {
		"https://picsum.photos/id/1003/600/400",
		"https://picsum.photos/id/1016/600/400",
		"https://picsum.photos/id/1025/600/400",
	},
}

// ImagePicker returns an index in [0, n)
type ImagePicker func(n int) int

// natureImageService implements the NatureImageService interface
type natureImageService struct {
	images map[string][]string
	pick   ImagePicker
}

// NewNatureImageService creates a new nature image service. A nil picker
// selects images uniformly at random.
func NewNatureImageService(pick ImagePicker) NatureImageService {
	if pick == nil {
		pick = rand.IntN
	}
	return &natureImageService{
		images: natureImages,
		pick:   pick,
	}
}

// Resolve maps keyword to an image URL. Unknown keywords get a seeded
// placeholder image; the keyword is echoed back unchanged.
func (s *natureImageService) Resolve(ctx context.Context, keyword string) *models.NatureImageResponse {
	return &models.NatureImageResponse{
		Keyword:  keyword,
		ImageURL: s.imageFor(keyword),
	}
}

// Keywords returns the keywords that have curated images, sorted
func (s *natureImageService) Keywords(ctx context.Context) []string {
	keywords := make([]string, 0, len(s.images))
	for k := range s.images {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	return keywords
}

func (s *natureImageService) imageFor(keyword string) string {
	urls, ok := s.images[strings.ToLower(keyword)]
	if !ok || len(urls) == 0 {
		return fmt.Sprintf(fallbackImageURL, url.PathEscape(keyword))
	}

	i := s.pick(len(urls))
	if i < 0 || i >= len(urls) {
		i = 0
	}
	return urls[i]
}
