package webtext

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "ruby transliteration",
			input:    "<ruby>धर्म<rt>dharma</rt></ruby>",
			expected: "<ruby>धर्म</ruby>",
		},
		{
			name:     "ruby with rp",
			input:    "<ruby>धर्म<rp>(</rp><rt>dharma</rt><rp>)</rp></ruby>",
			expected: "<ruby>धर्म</ruby>",
		},
		{
			name:     "footnote marker",
			input:    "युयुत्सवः<sup><a href='#fn1'>1</a></sup>।",
			expected: "युयुत्सवः।",
		},
		{
			name:     "attributes in tags",
			input:    "<ruby class='sa'>काम<rt class='iast'>kāma</rt></ruby>",
			expected: "<ruby class='sa'>काम</ruby>",
		},
		{
			name:     "plain text untouched",
			input:    "राम वनं गच्छति",
			expected: "राम वनं गच्छति",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize([]byte(tt.input))
			if string(got) != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	content, err := os.ReadFile("testdata/gita_page.html")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	article, err := Extract(content, "http://localhost/gita/1")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if !strings.Contains(article.Title, "भगवद्गीता") {
		t.Errorf("title = %q", article.Title)
	}
	if !strings.Contains(article.Text, "कुरुक्षेत्रे") {
		t.Errorf("verse text missing, got %q", article.Text)
	}
	if strings.Contains(article.Text, "kurukṣetre") {
		t.Errorf("transliteration leaked into text: %q", article.Text)
	}
	if strings.Contains(article.Text, "धर्मक्षेत्रे(") {
		t.Errorf("ruby parentheses leaked into text: %q", article.Text)
	}
}

func TestFetch(t *testing.T) {
	body, err := os.ReadFile("testdata/gita_page.html")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("User-Agent"), "Mozilla") {
			t.Errorf("missing browser user agent, got %q", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(body)
	}))
	defer srv.Close()

	got, err := Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !strings.Contains(string(got), "कुरुक्षेत्रे") {
		t.Fatal("fetched body missing fixture content")
	}
}

func TestFetchRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 403 response")
	}
}
