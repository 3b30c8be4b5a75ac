// Package assistant answers shopping questions with a generative text model,
// using the catalog as context. It is outside the cart and checkout path.
package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Chahethsen12/MobiTech-Elite/internal/domain"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
)

const (
	Greeting       = "Hello! I'm your AI Shopping Assistant. How can I help you find the perfect phone today?"
	EmptyReply     = "I'm sorry, I couldn't process that request."
	FailureReply   = "Something went wrong while talking to the AI assistant."
	defaultTimeout = 20 * time.Second
)

var (
	ErrEmptyQuestion = errors.New("question is empty")
	ErrNotConfigured = errors.New("assistant is not configured")
)

type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type Answer struct {
	Text    string
	Sources []Source
}

type Generator interface {
	Generate(ctx context.Context, prompt string) (Answer, error)
}

type Reply struct {
	Text     string   `json:"text"`
	Sources  []Source `json:"sources,omitempty"`
	Degraded bool     `json:"degraded"`
}

type Assistant struct {
	gen     Generator
	cb      *gobreaker.CircuitBreaker[Answer]
	timeout time.Duration
	log     zerolog.Logger
}

func New(gen Generator, timeout time.Duration, log zerolog.Logger) *Assistant {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	cb := gobreaker.NewCircuitBreaker[Answer](gobreaker.Settings{
		Name:        "assistant",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotConfigured)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Stringer("from", from).Stringer("to", to).Msg("circuit breaker state changed")
		},
	})

	return &Assistant{gen: gen, cb: cb, timeout: timeout, log: log}
}

// Ask sends the question with the catalog as context. Generator failures and
// empty answers become a fixed apology marked Degraded; only a blank question
// is an error. Cited sources are listed even under the apology.
func (a *Assistant) Ask(ctx context.Context, question string, products []domain.Product) (Reply, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Reply{}, ErrEmptyQuestion
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := buildPrompt(question, products)
	answer, err := a.cb.Execute(func() (Answer, error) {
		return a.gen.Generate(ctx, prompt)
	})
	if err != nil {
		a.log.Error().Err(err).Msg("assistant request failed")
		return Reply{Text: FailureReply, Degraded: true}, nil
	}

	reply := Reply{Text: answer.Text, Sources: citedSources(answer.Sources)}
	if strings.TrimSpace(answer.Text) == "" {
		reply.Text = EmptyReply
		reply.Degraded = true
	}
	reply.Text = withSources(reply.Text, reply.Sources)
	return reply, nil
}

// unconfigured stands in when no API key is set.
type unconfigured struct{}

func (unconfigured) Generate(context.Context, string) (Answer, error) {
	return Answer{}, ErrNotConfigured
}

// Unconfigured returns a Generator that always fails with ErrNotConfigured.
func Unconfigured() Generator {
	return unconfigured{}
}
