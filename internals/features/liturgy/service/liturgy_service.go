package service

import (
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"

	"github.com/rodrigospisila/parish-backend/internals/configs"
)

type Reading struct {
	Title     string `json:"title"`
	Text      string `json:"text"`
	Reference string `json:"reference"`
}

type Day struct {
	Date            string   `json:"date"`
	Liturgy         string   `json:"liturgy"`
	LiturgicalColor string   `json:"liturgical_color"`
	FirstReading    *Reading `json:"first_reading,omitempty"`
	Psalm           *Reading `json:"psalm,omitempty"`
	SecondReading   *Reading `json:"second_reading,omitempty"`
	Gospel          *Reading `json:"gospel,omitempty"`
}

// Cache is the per-date liturgy cache. The in-memory implementation below
// is the default; a shared cache can be swapped in without touching callers.
type Cache interface {
	Get(key string) (*Day, bool)
	Set(key string, day *Day, ttl time.Duration)
}

type memoryEntry struct {
	day       *Day
	expiresAt time.Time
}

type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

func (c *MemoryCache) Get(key string) (*Day, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.day, true
}

func (c *MemoryCache) Set(key string, day *Day, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{day: day, expiresAt: time.Now().Add(ttl)}
}

func (c *MemoryCache) ClearExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}

const cacheTTL = 24 * time.Hour

type LiturgyService struct {
	BaseURL    string
	HTTPClient *http.Client
	Cache      Cache
}

func NewLiturgyService() *LiturgyService {
	return &LiturgyService{
		BaseURL:    configs.LiturgyAPIURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Cache:      NewMemoryCache(),
	}
}

// GetByDate returns the liturgy for a YYYY-MM-DD date. Upstream failures
// never surface to the caller; a static fallback document is served instead.
func (s *LiturgyService) GetByDate(date string) *Day {
	if day, ok := s.Cache.Get(date); ok {
		return day
	}

	day, err := s.fetch(date)
	if err != nil {
		configs.Log.WithFields(logrus.Fields{"date": date, "error": err.Error()}).
			Warn("liturgy upstream failed, serving fallback")
		return fallbackDay(date)
	}

	s.Cache.Set(date, day, cacheTTL)
	return day
}

func (s *LiturgyService) GetToday() *Day {
	return s.GetByDate(time.Now().Format("2006-01-02"))
}

func (s *LiturgyService) fetch(date string) (*Day, error) {
	resp, err := s.HTTPClient.Get(fmt.Sprintf("%s/%s", s.BaseURL, date))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("liturgy API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var raw rawDay
	if err := sonic.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	return normalize(&raw, date), nil
}

// The upstream API answers in Portuguese; some mirrors answer in English.
// Both field shapes are accepted, Portuguese winning when both are present.
type rawReading struct {
	Titulo     string `json:"titulo"`
	Title      string `json:"title"`
	Texto      string `json:"texto"`
	Text       string `json:"text"`
	Referencia string `json:"referencia"`
	Reference  string `json:"reference"`
}

type rawDay struct {
	Liturgia        string      `json:"liturgia"`
	Liturgy         string      `json:"liturgy"`
	Cor             string      `json:"cor"`
	Color           string      `json:"color"`
	PrimeiraLeitura *rawReading `json:"primeiraLeitura"`
	FirstReading    *rawReading `json:"firstReading"`
	Salmo           *rawReading `json:"salmo"`
	Psalm           *rawReading `json:"psalm"`
	SegundaLeitura  *rawReading `json:"segundaLeitura"`
	SecondReading   *rawReading `json:"secondReading"`
	Evangelho       *rawReading `json:"evangelho"`
	Gospel          *rawReading `json:"gospel"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func normalizeReading(pt, en *rawReading, defaultTitle string) *Reading {
	if pt == nil && en == nil {
		return nil
	}
	if pt == nil {
		pt = &rawReading{}
	}
	if en == nil {
		en = &rawReading{}
	}
	return &Reading{
		Title:     firstNonEmpty(pt.Titulo, en.Title, pt.Title, en.Titulo, defaultTitle),
		Text:      firstNonEmpty(pt.Texto, en.Text, pt.Text, en.Texto),
		Reference: firstNonEmpty(pt.Referencia, en.Reference, pt.Reference, en.Referencia),
	}
}

func normalize(raw *rawDay, date string) *Day {
	return &Day{
		Date:            date,
		Liturgy:         firstNonEmpty(raw.Liturgia, raw.Liturgy, "Tempo Comum"),
		LiturgicalColor: firstNonEmpty(raw.Cor, raw.Color, "Verde"),
		FirstReading:    normalizeReading(raw.PrimeiraLeitura, raw.FirstReading, "Primeira Leitura"),
		Psalm:           normalizeReading(raw.Salmo, raw.Psalm, "Salmo"),
		SecondReading:   normalizeReading(raw.SegundaLeitura, raw.SecondReading, "Segunda Leitura"),
		Gospel:          normalizeReading(raw.Evangelho, raw.Gospel, "Evangelho"),
	}
}

func fallbackDay(date string) *Day {
	return &Day{
		Date:            date,
		Liturgy:         "Tempo Comum",
		LiturgicalColor: "Verde",
		Gospel: &Reading{
			Title: "Evangelho",
			Text:  "Liturgia não disponível no momento. Por favor, tente novamente mais tarde.",
		},
	}
}
