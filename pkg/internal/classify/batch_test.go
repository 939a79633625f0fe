package classify_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Himan2899/SmartFileOrganizer/pkg/configs"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/classify"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/types"
)

// fakeModelServer answers every chat completion with the given content.
func fakeModelServer(t *testing.T, calls *atomic.Int64, content string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"choices":[{"message":{"role":"assistant","content":%q}}]}`, content)
	}))
}

func testConfig(baseURL string) *configs.ClassifierConfig {
	return &configs.ClassifierConfig{
		Enabled:         true,
		APIKey:          "test-key",
		BaseURL:         baseURL + "/v1",
		Model:           "gpt-4o-mini",
		VisionModel:     "gpt-4o",
		MaxTokens:       500,
		VisionMaxTokens: 300,
		GroupSize:       1,
		Timeout:         5,
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	cfg := &configs.ClassifierConfig{}

	if _, err := classify.NewClient(cfg); err != classify.ErrMissingAPIKey {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestClassifyDocument(t *testing.T) {
	srv := fakeModelServer(t, nil,
		`{"category":"report","confidence":0.85,"suggestedFolder":"Documents/Reports","reasoning":"quarterly figures"}`)
	defer srv.Close()

	client, err := classify.NewClient(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	file := &classify.InputFile{
		Name:        "q3.txt",
		Size:        100,
		ContentType: "text/plain",
		Content:     []byte(strings.Repeat("quarterly revenue figures and analysis ", 5)),
	}

	outcome, err := client.Classify(context.Background(), file)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}

	if outcome.Kind != types.ClassifyKindDocument {
		t.Fatalf("expected document outcome, got %q", outcome.Kind)
	}

	cls := outcome.Classification()
	if cls == nil || cls.Category != "report" {
		t.Fatalf("unexpected classification %+v", cls)
	}

	if outcome.Analysis.Metadata == nil || outcome.Analysis.Metadata.WordCount == 0 {
		t.Fatalf("expected document metadata, got %+v", outcome.Analysis.Metadata)
	}
}

func TestClassifyDocumentTooShort(t *testing.T) {
	calls := &atomic.Int64{}
	srv := fakeModelServer(t, calls, `{"category":"report","confidence":0.85}`)
	defer srv.Close()

	client, err := classify.NewClient(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	file := &classify.InputFile{
		Name:        "tiny.txt",
		ContentType: "text/plain",
		Content:     []byte("short"),
	}

	outcome, err := client.Classify(context.Background(), file)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}

	if outcome != nil {
		t.Fatalf("expected nil outcome for short document, got %+v", outcome)
	}

	if calls.Load() != 0 {
		t.Fatalf("short documents must not hit the model, saw %d calls", calls.Load())
	}
}

func TestClassifyImage(t *testing.T) {
	srv := fakeModelServer(t, nil,
		`{"category":"screenshot","confidence":0.95,"suggestedFolder":"Images/Screenshots"}`)
	defer srv.Close()

	client, err := classify.NewClient(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	file := &classify.InputFile{
		Name:        "shot.png",
		ContentType: "image/png",
		Content:     []byte{0x89, 0x50, 0x4e, 0x47},
	}

	outcome, err := client.Classify(context.Background(), file)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}

	if outcome.Kind != types.ClassifyKindImage {
		t.Fatalf("expected image outcome, got %q", outcome.Kind)
	}

	if outcome.Result == nil || outcome.Result.Category != "screenshot" {
		t.Fatalf("unexpected result %+v", outcome.Result)
	}
}

func TestClassifyBatch(t *testing.T) {
	srv := fakeModelServer(t, nil,
		`{"category":"document-scan","confidence":0.8,"suggestedFolder":"Images/Scans"}`)
	defer srv.Close()

	client, err := classify.NewClient(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	files := []*classify.InputFile{
		{Name: "a.png", Size: 10, ContentType: "image/png", Content: []byte("a")},
		{Name: "b.png", Size: 20, ContentType: "image/png", Content: []byte("b")},
		{Name: "c.png", Size: 30, ContentType: "image/png", Content: []byte("c")},
	}

	bc := classify.NewBatchClassifier(client, 2, 0)

	results, err := bc.ClassifyBatch(context.Background(), files)
	if err != nil {
		t.Fatalf("classify batch: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	for _, f := range files {
		outcome, ok := results[f.Key()]
		if !ok {
			t.Fatalf("missing result for %s", f.Name)
		}

		if outcome.Classification().Category != "document-scan" {
			t.Fatalf("unexpected category for %s: %+v", f.Name, outcome.Classification())
		}
	}
}

func TestClassifyBatchIsolatesFailures(t *testing.T) {
	var n atomic.Int64

	// fail the second request only
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if n.Add(1) == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"choices":[{"message":{"role":"assistant","content":"{\"category\":\"photo\",\"confidence\":0.9}"}}]}`)
	}))
	defer srv.Close()

	client, err := classify.NewClient(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	files := []*classify.InputFile{
		{Name: "a.png", Size: 10, ContentType: "image/png", Content: []byte("a")},
		{Name: "b.png", Size: 20, ContentType: "image/png", Content: []byte("b")},
		{Name: "c.png", Size: 30, ContentType: "image/png", Content: []byte("c")},
	}

	// group size 1 keeps request order deterministic
	bc := classify.NewBatchClassifier(client, 1, 0)

	results, err := bc.ClassifyBatch(context.Background(), files)
	if err != nil {
		t.Fatalf("classify batch: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results with one failure, got %d", len(results))
	}

	if _, ok := results[files[1].Key()]; ok {
		t.Fatal("failed file should be omitted from results")
	}
}

func TestClassifyBatchCancelledBetweenGroups(t *testing.T) {
	srv := fakeModelServer(t, nil, `{"category":"photo","confidence":0.9}`)
	defer srv.Close()

	client, err := classify.NewClient(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	files := []*classify.InputFile{
		{Name: "a.png", Size: 10, ContentType: "image/png", Content: []byte("a")},
		{Name: "b.png", Size: 20, ContentType: "image/png", Content: []byte("b")},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// a pacing delay forces the limiter to observe the cancelled context
	bc := classify.NewBatchClassifier(client, 1, 50*time.Millisecond)

	if _, err := bc.ClassifyBatch(ctx, files); err == nil {
		t.Fatal("expected context error from cancelled batch")
	}
}

func TestTestConnectivity(t *testing.T) {
	srv := fakeModelServer(t, nil, "API key is working")
	defer srv.Close()

	client, err := classify.NewClient(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	resp := client.TestConnectivity(context.Background())

	if !resp.OK {
		t.Fatalf("expected OK, got %+v", resp)
	}

	if resp.Message != "API key is working" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}
