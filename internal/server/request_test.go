package server

import (
	"math"
	"net/http"
	"net/url"
	"testing"
)

func TestPaginationWindow(t *testing.T) {
	tests := []struct {
		name      string
		p         pagination
		n         int
		wantStart int
		wantEnd   int
	}{
		{"defaults", pagination{0, unbounded}, 4, 0, 4},
		{"offset and limit", pagination{1, 2}, 4, 1, 3},
		{"limit past end", pagination{3, 10}, 4, 3, 4},
		{"offset past end", pagination{9, 1}, 4, 4, 4},
		{"limit zero", pagination{0, 0}, 4, 0, 0},
		{"saturated limit", pagination{2, math.MaxInt}, 4, 2, 4},
		{"empty collection", pagination{0, unbounded}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.p.window(tt.n)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("window(%d) = [%d:%d], want [%d:%d]", tt.n, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query string
		want  pagination
	}{
		{"", pagination{0, unbounded}},
		{"offset=3", pagination{3, unbounded}},
		{"limit=0", pagination{0, 0}},
		{"offset=2&limit=5", pagination{2, 5}},
		{"offset=x&limit=5", pagination{0, unbounded}},
		{"offset=2&limit=-5", pagination{0, unbounded}},
	}

	for _, tt := range tests {
		q, err := url.ParseQuery(tt.query)
		if err != nil {
			t.Fatalf("ParseQuery(%q) error = %v", tt.query, err)
		}
		if got := parsePagination(q); got != tt.want {
			t.Errorf("parsePagination(%q) = %+v, want %+v", tt.query, got, tt.want)
		}
	}
}

func TestHasJSONContentType(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"Application/JSON", true},
		{"application/problem+json", true},
		{"", false},
		{"text/plain", false},
		{"application/xml", false},
		{"text/json+xml", false},
		{";;;", false},
	}

	for _, tt := range tests {
		h := http.Header{}
		if tt.contentType != "" {
			h.Set("Content-Type", tt.contentType)
		}
		if got := hasJSONContentType(h); got != tt.want {
			t.Errorf("hasJSONContentType(%q) = %v, want %v", tt.contentType, got, tt.want)
		}
	}
}
