package download

import (
	"encoding/json"
	"testing"

	"github.com/lrstanley/go-ytdlp"
)

// resultWithJSON builds a yt-dlp result whose stdout lines are the given JSON documents
func resultWithJSON(docs ...string) *ytdlp.Result {
	result := &ytdlp.Result{}
	for _, doc := range docs {
		raw := json.RawMessage(doc)
		result.OutputLogs = append(result.OutputLogs, &ytdlp.ResultLog{
			Line: doc,
			JSON: &raw,
			Pipe: "stdout",
		})
	}
	return result
}

func TestMetadataFromResult(t *testing.T) {
	result := resultWithJSON(`{"_type":"video","id":"123","title":"Nightcall","uploader":"Kavinsky","duration":258}`)

	meta, err := metadataFromResult(result)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if meta.Title != "Nightcall" || meta.Uploader != "Kavinsky" {
		t.Errorf("Unexpected metadata: %+v", meta)
	}
}

func TestMetadataFromResult_MissingFields(t *testing.T) {
	result := resultWithJSON(`{"_type":"video","id":"123"}`)

	meta, err := metadataFromResult(result)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if meta.Title != "" || meta.Uploader != "" {
		t.Errorf("Expected empty metadata, got %+v", meta)
	}
}

func TestMetadataFromResult_NoInfo(t *testing.T) {
	if _, err := metadataFromResult(&ytdlp.Result{}); err == nil {
		t.Error("Expected error for output without extracted info")
	}

	plain := &ytdlp.Result{OutputLogs: []*ytdlp.ResultLog{{Line: "ERROR: Unsupported URL", Pipe: "stderr"}}}
	if _, err := metadataFromResult(plain); err == nil {
		t.Error("Expected error for non-JSON output")
	}
}

func TestDeref(t *testing.T) {
	if deref(nil) != "" {
		t.Error("Expected empty string for nil")
	}
	s := "Kavinsky"
	if deref(&s) != "Kavinsky" {
		t.Errorf("Expected Kavinsky, got %s", deref(&s))
	}
}
