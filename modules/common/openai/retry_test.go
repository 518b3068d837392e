package openai

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestIs429Error(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("status code: 429"), true},
		{errors.New("Rate Limit exceeded"), true},
		{errors.New("You exceeded your current quota"), true},
		{errors.New("status code: 401, invalid api key"), false},
		{errors.New("connection refused"), false},
	}

	for _, c := range cases {
		if got := is429Error(c.err); got != c.want {
			t.Fatalf("is429Error(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestCreateImageWithRetryNoKeys(t *testing.T) {
	_, err := CreateImageWithRetry(context.Background(), nil, openai.ImageRequest{})
	if err == nil {
		t.Fatal("expected error when no API keys are provided")
	}
}
