// Package gemini is a minimal client for the Gemini generateContent REST API.
package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

var ErrEmptyResponse = errors.New("gemini returned no candidate text")

type Client struct {
	http  *resty.Client
	model string
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("Content-Type", "application/json")
	client.SetQueryParam("key", apiKey)

	return &Client{
		http:  client,
		model: model,
	}
}

func (c *Client) Model() string {
	return c.model
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// Generate sends a single-turn prompt and returns the first candidate's text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetPathParam("model", c.model).
		SetBody(body).
		Post("/models/{model}:generateContent")
	if err != nil {
		return "", errors.Wrap(err, "calling gemini")
	}

	if res.IsError() {
		msg := gjson.GetBytes(res.Body(), "error.message").String()
		if msg == "" {
			msg = res.Status()
		}
		return "", errors.Errorf("gemini returned %d: %s", res.StatusCode(), msg)
	}

	text := gjson.GetBytes(res.Body(), "candidates.0.content.parts.0.text")
	if !text.Exists() || strings.TrimSpace(text.String()) == "" {
		return "", ErrEmptyResponse
	}
	return strings.TrimSpace(text.String()), nil
}
