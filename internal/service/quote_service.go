package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"github.com/limbo/taskflow/pkg/entity"
)

const DefaultQuoteURL = "https://zenquotes.io/api/random"

var (
	// Served when the upstream answers with no quotes
	EmptyQuoteFallback = entity.Quote{
		Text:   "The secret of getting ahead is getting started. Every small step counts! 🌟",
		Author: "Mark Twain",
	}
	// Served when the upstream cannot be reached or decoded
	ErrorQuoteFallback = entity.Quote{
		Text:   "You are capable of amazing things! Keep pushing forward! 💪",
		Author: "TaskFlow",
	}
)

type zenQuote struct {
	Q string `json:"q"`
	A string `json:"a"`
}

type QuoteService struct {
	url    string
	client *http.Client
}

func NewQuoteService(url string, timeout time.Duration) *QuoteService {
	if url == "" {
		url = DefaultQuoteURL
	}
	return &QuoteService{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (qs *QuoteService) GetQuote(ctx context.Context) entity.Quote {
	quotes, err := qs.fetch(ctx)
	if err != nil {
		slog.Warn("quote upstream failed, serving fallback", slog.String("error", err.Error()))
		return ErrorQuoteFallback
	}
	if len(quotes) == 0 {
		return EmptyQuoteFallback
	}
	return entity.Quote{
		Text:   quotes[0].Q,
		Author: quotes[0].A,
	}
}

func (qs *QuoteService) fetch(ctx context.Context) ([]zenQuote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, qs.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := qs.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling quote API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote API error (%d): %s", resp.StatusCode, string(body))
	}

	var quotes []zenQuote
	if err = sonic.Unmarshal(body, &quotes); err != nil {
		// Well-formed JSON that is not a list carries no quotes
		var doc any
		if sonic.Unmarshal(body, &doc) == nil {
			if _, isList := doc.([]any); !isList {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return quotes, nil
}
