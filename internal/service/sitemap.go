package service

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"citycast/internal/repository"
	"citycast/internal/storage"
)

const (
	SitemapKey = "sitemap.xml"

	// SitemapMaxAge is how long a published sitemap is served before Open
	// rebuilds it.
	SitemapMaxAge = 24 * time.Hour

	sitemapContentType = "application/xml; charset=utf-8"
	sitemapXMLNS       = "http://www.sitemaps.org/schemas/sitemap/0.9"
)

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapService renders the public sitemap and keeps the published copy
// in object storage.
type SitemapService interface {
	// Build renders the sitemap for the configured and stored cities.
	Build(ctx context.Context) ([]byte, error)

	// Publish builds the sitemap and uploads it under SitemapKey.
	Publish(ctx context.Context) (storage.ObjectInfo, error)

	// Open streams the published sitemap, publishing it first when it is
	// missing or older than SitemapMaxAge. Without object storage it
	// renders on every call.
	Open(ctx context.Context) (io.ReadCloser, error)
}

type sitemapService struct {
	store   storage.Storage
	repo    repository.StopRepository
	siteURL string
	cities  []string
	now     func() time.Time
}

// NewSitemapService constructs a new SitemapService. store may be nil.
func NewSitemapService(store storage.Storage, repo repository.StopRepository, siteURL string, cities []string) SitemapService {
	return &sitemapService{
		store:   store,
		repo:    repo,
		siteURL: strings.TrimRight(siteURL, "/"),
		cities:  cities,
		now:     time.Now,
	}
}

func (s *sitemapService) Build(ctx context.Context) ([]byte, error) {
	cities, err := s.cityNames(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now().UTC().Format(time.DateOnly)
	set := urlSet{XMLNS: sitemapXMLNS}
	set.URLs = append(set.URLs, sitemapURL{Loc: s.siteURL + "/", LastMod: today, ChangeFreq: "weekly", Priority: "1.0"})
	for _, c := range cities {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        s.siteURL + "/builder/" + escapePathSegment(c),
			LastMod:    today,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// cityNames returns the lowercased configured and stored cities without
// duplicates, in Dutch collation order.
func (s *sitemapService) cityNames(ctx context.Context) ([]string, error) {
	stored, err := s.repo.ListCities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}

	lower := cases.Lower(language.Dutch)
	seen := make(map[string]bool)
	var out []string
	for _, c := range append(append([]string{}, s.cities...), stored...) {
		name := lower.String(strings.TrimSpace(c))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	collate.New(language.Dutch).SortStrings(out)
	return out, nil
}

func (s *sitemapService) Publish(ctx context.Context) (storage.ObjectInfo, error) {
	_, info, err := s.publish(ctx)
	return info, err
}

func (s *sitemapService) publish(ctx context.Context) ([]byte, storage.ObjectInfo, error) {
	if s.store == nil {
		return nil, storage.ObjectInfo{}, fmt.Errorf("publish sitemap: %w", ErrNotConfigured)
	}
	data, err := s.Build(ctx)
	if err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	info, err := s.store.Put(ctx, SitemapKey, bytes.NewReader(data), storage.PutObjectOptions{
		Size:         int64(len(data)),
		ContentType:  sitemapContentType,
		CacheControl: "public, max-age=3600",
	})
	if err != nil {
		return nil, storage.ObjectInfo{}, fmt.Errorf("upload sitemap: %w", err)
	}
	return data, info, nil
}

func (s *sitemapService) Open(ctx context.Context) (io.ReadCloser, error) {
	if s.store == nil {
		data, err := s.Build(ctx)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(data)), nil
	}

	rc, info, err := s.store.Get(ctx, SitemapKey)
	if err == nil {
		if info.LastModified.IsZero() || s.now().Sub(info.LastModified) < SitemapMaxAge {
			return rc, nil
		}
		data, _, err := s.publish(ctx)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Time("last_modified", info.LastModified).Msg("sitemap_refresh_failed")
			return rc, nil
		}
		rc.Close()
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("read sitemap: %w", err)
	}

	data, _, err := s.publish(ctx)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// escapePathSegment escapes like encodeURIComponent: everything except
// letters, digits and -_.!~*'() is percent-encoded.
func escapePathSegment(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)
