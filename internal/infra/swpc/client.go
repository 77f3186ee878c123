package swpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yanqian/planets/internal/domain/spaceweather"
)

const (
	defaultBaseURL = "https://services.swpc.noaa.gov/products/noaa-planetary-k-index-forecast.json"
	maxBodyBytes   = 4 << 20
)

var errNotTable = errors.New("forecast payload is not a table")

// Client reads the NOAA SWPC planetary K-index forecast.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient builds an API client. The timeout bounds the whole exchange.
func NewClient(url string, timeout time.Duration) *Client {
	endpoint := strings.TrimSpace(url)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 6 * time.Second
	}
	return &Client{
		url: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchForecast performs one GET and decodes the table. It never retries.
func (c *Client) FetchForecast(ctx context.Context) (spaceweather.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return spaceweather.Table{}, fmt.Errorf("build forecast request: %w", err)
	}
	req.Header.Set("User-Agent", "planets-service")
	req.Header.Set("Accept", "application/json, text/plain;q=0.9, */*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return spaceweather.Table{}, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return spaceweather.Table{}, fmt.Errorf("forecast request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return spaceweather.Table{}, fmt.Errorf("read forecast response: %w", err)
	}
	return decodeTable(body)
}

// decodeTable accepts [[header...], [row...], ...]. Rows that are not lists
// are kept as nil so the selector skips them.
func decodeTable(body []byte) (spaceweather.Table, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return spaceweather.Table{}, fmt.Errorf("decode forecast response: %w", err)
	}
	if len(raw) == 0 {
		return spaceweather.Table{}, nil
	}

	var header []any
	if err := json.Unmarshal(raw[0], &header); err != nil {
		return spaceweather.Table{}, fmt.Errorf("%w: header row: %v", errNotTable, err)
	}
	table := spaceweather.Table{
		Header: make([]string, 0, len(header)),
		Rows:   make([][]any, 0, len(raw)-1),
	}
	for _, h := range header {
		name, _ := h.(string)
		table.Header = append(table.Header, name)
	}
	for _, r := range raw[1:] {
		table.Rows = append(table.Rows, decodeRow(r))
	}
	return table, nil
}

func decodeRow(r json.RawMessage) []any {
	dec := json.NewDecoder(bytes.NewReader(r))
	dec.UseNumber()
	var row []any
	if err := dec.Decode(&row); err != nil {
		return nil
	}
	return row
}
