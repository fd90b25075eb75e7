package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"sync"

	"github.com/HarrelAlex/Alimer/config"
	"github.com/HarrelAlex/Alimer/internal/model"
	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.1.1 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/92.0.4515.107 Safari/537.36",
}

// PageMetadata is what the scraper can tell about a page without reading it.
type PageMetadata struct {
	Title        string
	Description  string
	Author       string
	Date         string
	MaterialType model.MaterialType
}

// ScraperService is the document fetch and markup extraction collaborator.
type ScraperService interface {
	FetchPage(ctx context.Context, url string) (string, error)
	ExtractTextContent(html string) string
	ExtractMetadata(html, url string) PageMetadata
}

type scraperService struct {
	client *http.Client

	mu      sync.Mutex
	uaIndex int
}

func NewScraperService(cfg *config.Config) ScraperService {
	return &scraperService{
		client: &http.Client{Timeout: cfg.Materials.FetchTimeout},
	}
}

// nextUserAgent rotates through the outbound user-agent pool to reduce
// blocking by target sites.
func (s *scraperService) nextUserAgent() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ua := userAgents[s.uaIndex]
	s.uaIndex = (s.uaIndex + 1) % len(userAgents)
	return ua
}

func (s *scraperService) FetchPage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("invalid url %s: %w", url, err)
	}
	req.Header.Set("User-Agent", s.nextUserAgent())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch of %s returned status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body of %s: %w", url, err)
	}
	return string(body), nil
}

const contentSelector = "div[class*=content], div[class*=article], div[class*=post], div[class*=main]"

var (
	whitespaceRe   = regexp.MustCompile(`\s+`)
	missingSpaceRe = regexp.MustCompile(`\.([A-Z])`)
)

// ExtractTextContent pulls the main textual content out of an HTML page,
// preferring semantic containers and falling back to the whole body.
func (s *scraperService) ExtractTextContent(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Warn().Err(err).Msg("Failed to parse HTML document")
		return ""
	}

	doc.Find("script, style, nav, footer, header").Remove()

	var text string
	if main := doc.Find("main").First(); main.Length() > 0 {
		text = main.Text()
	} else if article := doc.Find("article").First(); article.Length() > 0 {
		text = article.Text()
	} else if div := doc.Find(contentSelector).First(); div.Length() > 0 {
		text = div.Text()
	} else {
		text = doc.Find("body").Text()
	}

	text = whitespaceRe.ReplaceAllString(text, " ")
	text = missingSpaceRe.ReplaceAllString(text, ". $1")
	return strings.TrimSpace(text)
}

// ExtractMetadata reads title, description, author and date from meta tags
// and classifies the material type.
func (s *scraperService) ExtractMetadata(html, url string) PageMetadata {
	meta := PageMetadata{MaterialType: model.MaterialArticle}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("Failed to parse HTML for metadata")
		return meta
	}

	meta.Title = strings.TrimSpace(doc.Find("title").First().Text())

	if v, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		meta.Description = v
	} else if v, ok := doc.Find(`meta[property="og:description"]`).First().Attr("content"); ok {
		meta.Description = v
	}

	if v, ok := doc.Find(`meta[name="author"]`).First().Attr("content"); ok {
		meta.Author = v
	} else if v, ok := doc.Find(`meta[property="og:author"]`).First().Attr("content"); ok {
		meta.Author = v
	}

	if v, ok := doc.Find(`meta[name="date"]`).First().Attr("content"); ok {
		meta.Date = v
	} else if timeTag := doc.Find("time").First(); timeTag.Length() > 0 {
		if v, ok := timeTag.Attr("datetime"); ok {
			meta.Date = v
		} else {
			meta.Date = strings.TrimSpace(timeTag.Text())
		}
	}

	meta.MaterialType = determineMaterialType(doc, url)
	return meta
}

// determineMaterialType classifies a page by URL keywords first, then DOM
// hints, defaulting to article for text content.
func determineMaterialType(doc *goquery.Document, url string) model.MaterialType {
	urlLower := strings.ToLower(url)

	switch {
	case strings.Contains(urlLower, "youtube.com"),
		strings.Contains(urlLower, "vimeo.com"),
		strings.Contains(urlLower, "video"):
		return model.MaterialVideo
	case strings.Contains(urlLower, "docs."), strings.Contains(urlLower, "documentation"):
		return model.MaterialDocumentation
	case strings.Contains(urlLower, "tutorial"):
		return model.MaterialTutorial
	case strings.Contains(urlLower, "course"),
		strings.Contains(urlLower, "udemy"),
		strings.Contains(urlLower, "coursera"):
		return model.MaterialCourse
	case strings.Contains(urlLower, "blog"):
		return model.MaterialBlog
	case strings.Contains(urlLower, "book"):
		return model.MaterialBook
	}

	if doc != nil {
		if doc.Find("video").Length() > 0 {
			return model.MaterialVideo
		}
		embedded := false
		doc.Find("iframe").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if src, ok := sel.Attr("src"); ok {
				srcLower := strings.ToLower(src)
				if strings.Contains(srcLower, "youtube") || strings.Contains(srcLower, "vimeo") {
					embedded = true
					return false
				}
			}
			return true
		})
		if embedded {
			return model.MaterialVideo
		}
	}

	return model.MaterialArticle
}
