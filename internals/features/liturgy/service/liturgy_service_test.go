package service

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func newTestService(rt roundTripFunc) *LiturgyService {
	return &LiturgyService{
		BaseURL:    "http://liturgy.test",
		HTTPClient: &http.Client{Transport: rt},
		Cache:      NewMemoryCache(),
	}
}

func TestGetByDatePortugueseFields(t *testing.T) {
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "http://liturgy.test/2026-01-15", req.URL.String())
		return jsonResponse(`{
			"liturgia": "Quinta-feira da 1ª Semana do Tempo Comum",
			"cor": "Verde",
			"primeiraLeitura": {"titulo": "Primeira Leitura", "texto": "Naquele tempo...", "referencia": "1Sm 4,1-11"},
			"salmo": {"titulo": "Salmo", "texto": "Senhor, vinde salvar-nos.", "referencia": "Sl 43"},
			"evangelho": {"titulo": "Evangelho", "texto": "Aproximou-se um leproso...", "referencia": "Mc 1,40-45"}
		}`), nil
	})

	day := svc.GetByDate("2026-01-15")
	require.NotNil(t, day)
	assert.Equal(t, "2026-01-15", day.Date)
	assert.Equal(t, "Quinta-feira da 1ª Semana do Tempo Comum", day.Liturgy)
	assert.Equal(t, "Verde", day.LiturgicalColor)
	require.NotNil(t, day.FirstReading)
	assert.Equal(t, "1Sm 4,1-11", day.FirstReading.Reference)
	require.NotNil(t, day.Gospel)
	assert.Equal(t, "Mc 1,40-45", day.Gospel.Reference)
	assert.Nil(t, day.SecondReading)
}

func TestGetByDateEnglishFields(t *testing.T) {
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(`{
			"liturgy": "Third Sunday of Advent",
			"color": "Rose",
			"gospel": {"title": "Gospel", "text": "Rejoice in the Lord always.", "reference": "Lk 3,10-18"}
		}`), nil
	})

	day := svc.GetByDate("2026-12-13")
	require.NotNil(t, day)
	assert.Equal(t, "Third Sunday of Advent", day.Liturgy)
	assert.Equal(t, "Rose", day.LiturgicalColor)
	require.NotNil(t, day.Gospel)
	assert.Equal(t, "Lk 3,10-18", day.Gospel.Reference)
}

func TestGetByDateServesFromCache(t *testing.T) {
	calls := 0
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(`{"liturgia": "Tempo Comum", "cor": "Verde"}`), nil
	})

	first := svc.GetByDate("2026-02-01")
	second := svc.GetByDate("2026-02-01")
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestGetByDateCacheExpiry(t *testing.T) {
	calls := 0
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(`{"liturgia": "Tempo Comum", "cor": "Verde"}`), nil
	})

	svc.GetByDate("2026-02-01")
	// Simulate the TTL elapsing.
	svc.Cache.Set("2026-02-01", fallbackDay("2026-02-01"), -time.Minute)
	svc.GetByDate("2026-02-01")
	assert.Equal(t, 2, calls)
}

func TestGetByDateFallbackOnTransportError(t *testing.T) {
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	day := svc.GetByDate("2026-03-01")
	require.NotNil(t, day)
	assert.Equal(t, "Tempo Comum", day.Liturgy)
	assert.Equal(t, "Verde", day.LiturgicalColor)
	require.NotNil(t, day.Gospel)
	assert.Contains(t, day.Gospel.Text, "não disponível")
}

func TestGetByDateFallbackOnBadStatus(t *testing.T) {
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusInternalServerError,
			Body:       io.NopCloser(strings.NewReader("upstream broke")),
		}, nil
	})

	day := svc.GetByDate("2026-03-02")
	require.NotNil(t, day)
	assert.Equal(t, "Tempo Comum", day.Liturgy)
}

func TestGetByDateFallbackNotCached(t *testing.T) {
	calls := 0
	svc := newTestService(func(req *http.Request) (*http.Response, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("connection refused")
		}
		return jsonResponse(`{"liturgia": "Advento", "cor": "Roxo"}`), nil
	})

	first := svc.GetByDate("2026-03-03")
	assert.Equal(t, "Tempo Comum", first.Liturgy)

	second := svc.GetByDate("2026-03-03")
	assert.Equal(t, "Advento", second.Liturgy)
	assert.Equal(t, 2, calls)
}

func TestNormalizeDefaults(t *testing.T) {
	day := normalize(&rawDay{
		Evangelho: &rawReading{Texto: "texto sem título"},
	}, "2026-04-01")

	assert.Equal(t, "Tempo Comum", day.Liturgy)
	assert.Equal(t, "Verde", day.LiturgicalColor)
	require.NotNil(t, day.Gospel)
	assert.Equal(t, "Evangelho", day.Gospel.Title)
}

func TestMemoryCacheClearExpired(t *testing.T) {
	cache := NewMemoryCache()
	cache.Set("fresh", fallbackDay("2026-05-01"), time.Hour)
	cache.Set("stale", fallbackDay("2026-05-02"), -time.Minute)

	cache.ClearExpired()

	_, ok := cache.Get("fresh")
	assert.True(t, ok)
	_, ok = cache.Get("stale")
	assert.False(t, ok)
	assert.Len(t, cache.entries, 1)
}
