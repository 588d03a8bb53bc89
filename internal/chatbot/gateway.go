// Package chatbot answers farming questions through a language model and
// degrades to a keyword table when the model is unavailable.
package chatbot

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/BruksfildServices01/farmergpt/internal/httperr"
	"github.com/BruksfildServices01/farmergpt/internal/llm"
	"github.com/BruksfildServices01/farmergpt/internal/metrics"
	"github.com/BruksfildServices01/farmergpt/internal/reporting"
)

const (
	SourceProvider = "provider"
	SourceFallback = "fallback"
)

const (
	systemPrompt = "You are FarmerGPT, a helpful AI assistant specialized in agriculture and farming. " +
		"Provide practical, accurate advice to farmers about crops, weather, pest management, " +
		"soil health, irrigation, and other farming topics. Keep responses concise and actionable."

	maxTokens   = 500
	temperature = 0.7
)

type Answer struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
	Source   string `json:"source"`
	Fallback bool   `json:"fallback"`
	Note     string `json:"note,omitempty"`
}

type Gateway struct {
	client   llm.Client
	timeout  time.Duration
	log      *slog.Logger
	reporter *reporting.Reporter
}

// NewGateway takes a nil client when no provider key is configured.
func NewGateway(
	client llm.Client,
	timeout time.Duration,
	log *slog.Logger,
	reporter *reporting.Reporter,
) *Gateway {
	if log == nil {
		log = slog.Default()
	}
	return &Gateway{
		client:   client,
		timeout:  timeout,
		log:      log,
		reporter: reporter,
	}
}

// Ask never surfaces provider failures; only an empty message is an error.
func (g *Gateway) Ask(ctx context.Context, message string) (*Answer, error) {
	if strings.TrimSpace(message) == "" {
		return nil, httperr.Validation("message_required", "Message is required", nil)
	}

	if g.client == nil {
		return g.fallback(message), nil
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	text, err := g.client.Chat(ctx, llm.ChatRequest{
		Messages: []llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: message},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		metrics.ProviderRequests.WithLabelValues("llm", metrics.OutcomeError).Inc()
		g.log.Warn("llm call failed, using fallback", "error", err)
		g.reporter.Capture(err, map[string]string{"component": "chatbot"})
		return g.fallback(message), nil
	}

	metrics.ProviderRequests.WithLabelValues("llm", metrics.OutcomeOK).Inc()
	metrics.ChatbotAnswers.WithLabelValues(SourceProvider).Inc()

	return &Answer{
		Response: text,
		Success:  true,
		Source:   SourceProvider,
	}, nil
}

func (g *Gateway) fallback(message string) *Answer {
	metrics.ChatbotAnswers.WithLabelValues(SourceFallback).Inc()
	return Fallback(message)
}
