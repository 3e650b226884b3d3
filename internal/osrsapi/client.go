package osrsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Адреса публичных API по умолчанию
const (
	DefaultMappingURL = "https://prices.runescape.wiki/api/v1/osrs/mapping"
	DefaultPricesURL  = "https://prices.runescape.wiki/api/v1/osrs/latest"
	DefaultDetailURL  = "https://secure.runescape.com/m=itemdb_oldschool/api/catalogue/detail.json"
	DefaultHiscoreURL = "https://secure.runescape.com/m=hiscore_oldschool/index_lite.json"
)

// Имена эндпоинтов для логов и метрик
const (
	EndpointMapping = "mapping"
	EndpointPrices  = "prices"
	EndpointDetail  = "detail"
	EndpointHiscore = "hiscore"
)

var (
	// ErrUnexpectedStatus — апстрим ответил не 200.
	ErrUnexpectedStatus = errors.New("osrsapi: unexpected status")
	// ErrNotFound — апстрим ответил 404.
	ErrNotFound = errors.New("osrsapi: not found")
	// ErrMalformed — 200, но тело не соответствует ожидаемой схеме.
	ErrMalformed = errors.New("osrsapi: malformed response")
)

// StatusError несёт код ответа апстрима.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d", e.Endpoint, e.Code)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnexpectedStatus:
		return true
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	}
	return false
}

type Conf struct {
	MappingURL string
	PricesURL  string
	DetailURL  string
	HiscoreURL string
	UserAgent  string
	Timeout    time.Duration
}

type Client struct {
	http *http.Client

	mappingURL string
	pricesURL  string
	detailURL  string
	hiscoreURL string
	userAgent  string

	// вызывается после каждого запроса; status=0 — ошибка транспорта
	OnResponse func(endpoint string, status int)
}

// NewClient создаёт клиента; пустые поля Conf заменяются значениями по умолчанию.
func NewClient(conf Conf) *Client {
	if conf.MappingURL == "" {
		conf.MappingURL = DefaultMappingURL
	}
	if conf.PricesURL == "" {
		conf.PricesURL = DefaultPricesURL
	}
	if conf.DetailURL == "" {
		conf.DetailURL = DefaultDetailURL
	}
	if conf.HiscoreURL == "" {
		conf.HiscoreURL = DefaultHiscoreURL
	}
	if conf.Timeout <= 0 {
		conf.Timeout = 10 * time.Second
	}
	return &Client{
		http:       &http.Client{Timeout: conf.Timeout},
		mappingURL: conf.MappingURL,
		pricesURL:  conf.PricesURL,
		detailURL:  conf.DetailURL,
		hiscoreURL: conf.HiscoreURL,
		userAgent:  conf.UserAgent,
	}
}

// getJSON — GET + проверка статуса + декодирование JSON в out.
func (c *Client) getJSON(ctx context.Context, endpoint, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(endpoint, 0)
		return fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	c.observe(endpoint, resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Endpoint: endpoint, Code: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w: %v", endpoint, ErrMalformed, err)
	}
	return nil
}

func (c *Client) observe(endpoint string, status int) {
	if c.OnResponse != nil {
		c.OnResponse(endpoint, status)
	}
}
