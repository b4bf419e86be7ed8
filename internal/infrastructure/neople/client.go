package neople

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"dnf_market/internal/domain"
	"dnf_market/internal/domain/entity"
	"dnf_market/internal/domain/value"
	"dnf_market/pkg/httpx"
	"dnf_market/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	apiKeyParam         = "apikey"
	auctionSoldEndpoint = "auction-sold"

	defaultRequestTimeout = 30 * time.Second
	maxDrainBytes         = 4 << 10
)

type Options struct {
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration
	LogFieldMaxLen int
}

// Client ходит в auction-sold Neople API. Ключ подставляется транспортом
// и в запросах, которые видит вызывающий код, не появляется.
type Client struct {
	baseURL        *url.URL
	httpClient     *http.Client
	requestTimeout time.Duration
}

type auctionSoldResponse struct {
	Rows []entity.SaleRecord `json:"rows"`
}

func NewClient(opts Options) (*Client, error) {
	baseURL, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}

	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", opts.BaseURL)
	}

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	transport := httpx.NewAPIKeyRoundTripper(
		httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(opts.LogFieldMaxLen),
		),
		apiKeyParam,
		opts.APIKey,
	)

	return &Client{
		baseURL:        baseURL,
		httpClient:     &http.Client{Transport: transport},
		requestTimeout: timeout,
	}, nil
}

// GetAuctionSold возвращает последние limit сделок по itemID, свежие первыми.
// Ошибки транспорта, таймаут и неуспешный статус отдаются как
// *domain.MarketQueryError.
func (c *Client) GetAuctionSold(ctx context.Context, itemID value.ItemID, limit int) ([]entity.SaleRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.auctionSoldURL(itemID, limit), http.NoBody)
	if err != nil {
		return nil, domain.NewMarketQueryError(itemID, 0, fmt.Errorf("http.NewRequestWithContext: %w", err))
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)

	requestDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		requestsTotal.WithLabelValues(resultTransport).Inc()
		return nil, domain.NewMarketQueryError(itemID, 0, fmt.Errorf("httpClient.Do: %w", err))
	}

	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, maxDrainBytes)

		if err := resp.Body.Close(); err != nil {
			logger(ctx).Warn("resp.Body.Close", logx.Error(err))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		requestsTotal.WithLabelValues(resultStatusError).Inc()

		logger(ctx).Warn("auction-sold returned non-success status",
			slog.String(logx.FieldItemID, itemID.String()),
			slog.Int(logx.FieldResponseStatus, resp.StatusCode),
		)

		return nil, domain.NewMarketQueryError(itemID, resp.StatusCode, nil)
	}

	var body auctionSoldResponse

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		requestsTotal.WithLabelValues(resultDecodeError).Inc()
		return nil, domain.NewMarketQueryError(itemID, 0, fmt.Errorf("json.Decode: %w", err))
	}

	requestsTotal.WithLabelValues(resultOK).Inc()

	return body.Rows, nil
}

func (c *Client) auctionSoldURL(itemID value.ItemID, limit int) string {
	u := c.baseURL.JoinPath(auctionSoldEndpoint)

	query := url.Values{}
	query.Set("itemId", itemID.String())
	query.Set("limit", strconv.Itoa(limit))
	query.Set("wordType", "match")
	query.Set("wordShort", "true")

	u.RawQuery = query.Encode()

	return u.String()
}
