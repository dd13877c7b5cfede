package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"autonomous-task-extraction/pkg/log"
)

const (
	ngrokAPIBase  = "http://ngrok:4040"
	ngrokAttempts = 10
	webhookPath   = "/webhook/telegram"
)

type webhookSetter interface {
	SetWebhook(ctx context.Context, webhookURL string) error
}

// registerWebhook points Telegram at this server. Without a configured URL it
// falls back to the public URL of a local ngrok tunnel. Failures are logged only.
func registerWebhook(ctx context.Context, l log.Logger, bot webhookSetter, configured string) {
	webhookURL := configured
	if webhookURL == "" {
		publicURL, err := detectNgrokURL(ctx, ngrokAPIBase, 3*time.Second)
		if err != nil {
			l.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = strings.TrimRight(publicURL, "/") + webhookPath
		l.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(ctx, webhookURL); err != nil {
		l.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	l.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}

type ngrokTunnels struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// detectNgrokURL polls the ngrok local API until a tunnel shows up, preferring HTTPS.
func detectNgrokURL(ctx context.Context, apiBase string, interval time.Duration) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= ngrokAttempts; attempt++ {
		publicURL, err := fetchTunnel(ctx, client, apiBase+"/api/tunnels")
		if err == nil {
			return publicURL, nil
		}
		lastErr = err

		if attempt == ngrokAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(interval):
		}
	}
	return "", fmt.Errorf("ngrok not ready after %d attempts: %w", ngrokAttempts, lastErr)
}

func fetchTunnel(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnels
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("decode tunnels: %w", err)
	}
	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", fmt.Errorf("no active tunnels")
}
