package textutil

import "testing"

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Dynasty Warriors", "Dynasty Warriors"},
		{"  Dynasty Warriors  ", "Dynasty Warriors"},
		{"../../etc/passwd", "etc_passwd"},
		{"League: 2026 / Redraft", "League_2026_Redraft"},
		{"trash*talk?league", "trash_talk_league"},
		{"___", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SanitizeName(tc.in); got != tc.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFallbackTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"sleeper league", "Sleeper League"},
		{"my_dynasty-league", "My Dynasty League"},
		{"  ", ""},
	}
	for _, tc := range cases {
		if got := FallbackTitle(tc.in); got != tc.want {
			t.Errorf("FallbackTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
