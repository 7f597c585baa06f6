package tunnel

import (
	"context"
	"strings"
	"time"
)

// DefaultSyntheticText is the canned apology used when nothing else worked.
const DefaultSyntheticText = "Sorry, our virtual assistant is temporarily unavailable. " +
	"Please try again in a few minutes or call our 24/7 hotline for immediate support."

// SyntheticStrategy answers locally, word by word, so the guest never gets an
// empty reply. Its results are always flagged Synthetic.
type SyntheticStrategy struct {
	text  string
	delay time.Duration
}

func NewSyntheticStrategy(text string, delay time.Duration) *SyntheticStrategy {
	if strings.TrimSpace(text) == "" {
		text = DefaultSyntheticText
	}
	return &SyntheticStrategy{text: text, delay: delay}
}

func (s *SyntheticStrategy) Name() string { return "synthetic" }

func (s *SyntheticStrategy) Send(ctx context.Context, _ *Request, onChunk func(text string)) (*Result, error) {
	words := strings.Fields(s.text)
	text := strings.Join(words, " ")

	if onChunk != nil {
		for i, word := range words {
			if i > 0 {
				if err := sleep(ctx, s.delay); err != nil {
					return nil, err
				}
				word = " " + word
			}
			onChunk(word)
		}
	}
	return &Result{ResponseText: text, Success: true, Synthetic: true, Strategy: s.Name()}, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
