package openlp

import "testing"

func TestNormalizeBaseURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"192.168.1.20", "http://192.168.1.20:4316"},
		{"  localhost:8080  ", "http://localhost:8080"},
		{"http://example.com:1234/main?x=1#frag", "http://example.com:1234"},
		{"https://openlp.local", "https://openlp.local:4316"},
		{"[::1]", "http://[::1]:4316"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := NormalizeBaseURL(tc.in)
			if err != nil {
				t.Fatalf("NormalizeBaseURL(%q) returned error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("NormalizeBaseURL(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeBaseURL_Rejects(t *testing.T) {
	for _, in := range []string{"", "   ", "http://", "http://%zz"} {
		if _, err := NormalizeBaseURL(in); err == nil {
			t.Fatalf("NormalizeBaseURL(%q) returned nil error, want error", in)
		}
	}
}
