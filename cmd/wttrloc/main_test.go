package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/tidwall/gjson"
)

func TestMain(m *testing.M) {
	SetupTestCmd()
	SetupExtractCmd()
	SetupServeCmd()
	os.Exit(m.Run())
}

// fakeOllama answers /api/generate by looking at how the prompt ends.
func fakeOllama(t *testing.T, replies map[string]string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		prompt := gjson.GetBytes(body, "prompt").String()
		for suffix, reply := range replies {
			if strings.HasSuffix(prompt, suffix) {
				w.Write([]byte(`{"model":"gemma3:27b","response":"` + reply + `","done":true}`))
				return
			}
		}
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"unexpected prompt"}`))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestExtractCommand(t *testing.T) {
	ts := fakeOllama(t, map[string]string{"near Stonehenge right now?": `~Stonehenge\n`})
	viper.Set("inference.base_url", ts.URL)
	viper.Set("log.level", "error")

	out, err := execute(t, "extract", "What", "is", "the", "temperature", "near", "Stonehenge", "right", "now?")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if out != "~Stonehenge\n" {
		t.Errorf("Expected '~Stonehenge', got %q", out)
	}
}

func TestRootRunsHarness(t *testing.T) {
	ts := fakeOllama(t, map[string]string{
		"Charlotte Douglas International Airport this week?": "clt",
		"near Stonehenge right now?":                         "~Stonehenge",
		"warm will it be in Portland?":                       "Portland",
		"John F. Kennedy International Airport this week?":   "jfk",
		"in Saint Louis?":                                    "St+Louis",
	})
	viper.Set("inference.base_url", ts.URL)
	viper.Set("log.level", "error")

	out, err := execute(t)
	if err != nil {
		t.Fatalf("harness returned error: %v", err)
	}
	if !strings.Contains(out, "\nSummary: 4 / 6 tests passed.\n") {
		t.Errorf("Expected 4/6 summary, got:\n%s", out)
	}
	if !strings.Contains(out, "💥 ERROR:") {
		t.Errorf("Expected the Taj Mahal case to error, got:\n%s", out)
	}
}

func TestExtractCommandRaw(t *testing.T) {
	var prompts []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		prompts = append(prompts, gjson.GetBytes(body, "prompt").String())
		w.Write([]byte(`{"model":"gemma3:27b","response":" Portland ","done":true}`))
	}))
	defer ts.Close()

	viper.Set("inference.base_url", ts.URL)
	viper.Set("log.level", "error")
	t.Cleanup(func() { extractRaw = false })

	out, err := execute(t, "extract", "--raw", "Weather", "in", "Portland?")
	if err != nil {
		t.Fatalf("extract --raw failed: %v", err)
	}
	if out != "Portland\n" {
		t.Errorf("Expected 'Portland', got %q", out)
	}

	if len(prompts) != 1 {
		t.Fatalf("Expected one request, got %d", len(prompts))
	}
	if prompts[0] != "Weather in Portland?" {
		t.Errorf("Expected the arguments sent as the whole prompt, got %q", prompts[0])
	}
	if strings.Contains(prompts[0], "## Instructions") {
		t.Error("Expected no instruction template with --raw")
	}
}

func TestExtractCommandComposesTemplate(t *testing.T) {
	var prompt string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		prompt = gjson.GetBytes(body, "prompt").String()
		w.Write([]byte(`{"response":"clt","done":true}`))
	}))
	defer ts.Close()

	viper.Set("inference.base_url", ts.URL)
	viper.Set("log.level", "error")

	if _, err := execute(t, "extract", "Weather at Charlotte Douglas?"); err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if !strings.HasPrefix(prompt, "\n## Instructions") || !strings.HasSuffix(prompt, "is: \nWeather at Charlotte Douglas?") {
		t.Errorf("Expected template followed by the question, got %q", prompt)
	}
}
