package location

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"wttrloc/internal/core"
)

type fakeProvider struct {
	reply string
	err   error
	reqs  []core.InferenceRequest
}

func (f *fakeProvider) ID() string { return "fake" }

func (f *fakeProvider) Generate(ctx context.Context, req *core.InferenceRequest) (*core.InferenceResponse, error) {
	f.reqs = append(f.reqs, *req)
	if f.err != nil {
		return nil, f.err
	}
	return &core.InferenceResponse{Response: f.reply, Done: true}, nil
}

func TestExtractTrimsWhitespace(t *testing.T) {
	testCases := []struct {
		name  string
		reply string
		want  string
	}{
		{"airport", "clt\n", "clt"},
		{"generic place", "  ~Stonehenge  ", "~Stonehenge"},
		{"city", "\tPortland\r\n", "Portland"},
		{"city with space", "Saint+Louis", "Saint+Louis"},
		{"malformed passes through", " Taj Mahal+ ", "Taj Mahal+"},
		{"empty", "   ", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := &fakeProvider{reply: tc.reply}
			got, err := NewExtractor(p, "gemma3:27b").Extract(context.Background(), "question")
			if err != nil {
				t.Fatalf("Extract failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
			if strings.TrimSpace(got) != got {
				t.Errorf("Trim must be idempotent, got %q", got)
			}
		})
	}
}

func TestExtractSendsOneNonStreamingRequest(t *testing.T) {
	p := &fakeProvider{reply: "jfk"}
	e := NewExtractor(p, "gemma3:27b")

	input := Compose("How cold is it at the John F. Kennedy International Airport this week?")
	if _, err := e.Extract(context.Background(), input); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(p.reqs) != 1 {
		t.Fatalf("Expected exactly one call, got %d", len(p.reqs))
	}
	req := p.reqs[0]
	if req.Model != "gemma3:27b" {
		t.Errorf("Expected model 'gemma3:27b', got '%s'", req.Model)
	}
	if req.Prompt != input {
		t.Error("Expected the input to be sent unchanged as the prompt")
	}
	if req.Stream {
		t.Error("Expected stream=false")
	}
}

func TestExtractPropagatesProviderError(t *testing.T) {
	boom := errors.New("connection refused")
	p := &fakeProvider{err: boom}

	_, err := NewExtractor(p, "m").Extract(context.Background(), "q")
	if !errors.Is(err, boom) {
		t.Fatalf("Expected wrapped provider error, got %v", err)
	}
}

func TestExtractLogsWithRequestID(t *testing.T) {
	obsCore, observedLogs := observer.New(zap.InfoLevel)
	p := &fakeProvider{reply: " Portland\n"}

	e := NewExtractor(p, "gemma3:27b", WithLogger(zap.New(obsCore)))
	if _, err := e.ExtractQuestion(context.Background(), "How warm will it be in Portland?"); err != nil {
		t.Fatalf("ExtractQuestion failed: %v", err)
	}

	logs := observedLogs.All()
	if len(logs) != 2 {
		t.Fatalf("Expected start and finish entries, got %d", len(logs))
	}
	id := logs[0].ContextMap()["request_id"]
	if id == nil || id == "" {
		t.Fatal("Expected request_id on log entries")
	}
	if logs[1].ContextMap()["request_id"] != id {
		t.Error("Expected the same request_id on start and finish")
	}
	if logs[0].ContextMap()["provider"] != "fake" {
		t.Errorf("Expected provider field, got %v", logs[0].ContextMap())
	}

	finished := logs[1].ContextMap()
	if finished["token"] != "Portland" || finished["kind"] != "city" {
		t.Errorf("Expected token and kind on the finish entry, got %v", finished)
	}
}

func TestCompose(t *testing.T) {
	question := "How warm will it be in Saint Louis?"
	got := Compose(question)

	if !strings.HasPrefix(got, PromptTemplate) {
		t.Error("Expected the template first")
	}
	if !strings.HasSuffix(got, "The prompt you will extract the location from is: \n"+question) {
		t.Errorf("Expected the question right after the final instruction line, got %q", got[len(got)-80:])
	}
}
