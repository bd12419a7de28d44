package docs

import (
	"strings"
	"testing"
)

func TestTopics_IncludesKeys(t *testing.T) {
	topics := Topics()
	want := map[string]bool{"keys": false, "filters": false, "config": false}
	for _, tp := range topics {
		if _, ok := want[tp]; ok {
			want[tp] = true
		}
	}
	for tp, found := range want {
		if !found {
			t.Fatalf("expected topic %q in %v", tp, topics)
		}
	}
}

func TestGet_CaseInsensitive(t *testing.T) {
	body, ok := Get(" KEYS ")
	if !ok {
		t.Fatalf("expected keys topic")
	}
	if !strings.Contains(body, "Toggle completed") {
		t.Fatalf("unexpected body: %q", body)
	}
	if _, ok := Get("nope"); ok {
		t.Fatalf("expected unknown topic to be missing")
	}
}

func TestHTML_RendersTopicTables(t *testing.T) {
	body, ok := Get("keys")
	if !ok {
		t.Fatalf("expected keys topic")
	}
	out := HTML(body)
	if !strings.Contains(out, "<h1>Keys</h1>") {
		t.Fatalf("expected heading, got:\n%s", out)
	}
	if !strings.Contains(out, "<table>") {
		t.Fatalf("expected GFM table, got:\n%s", out)
	}
}

func TestHTML_DropsRawHTML(t *testing.T) {
	out := HTML("hello <script>alert(1)</script>")
	if strings.Contains(out, "<script>") {
		t.Fatalf("raw html must not pass through: %s", out)
	}
	if HTML("  ") != "" {
		t.Fatalf("expected empty output for blank input")
	}
}
