package util

import (
	"errors"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"resume.pdf", "resume.pdf", false},
		{"  resume.pdf  ", "resume.pdf", false},
		{"my resume (final).docx", "my resume (final).docx", false},
		{"dir/resume.pdf", "dir_resume.pdf", false},
		{"../../etc/passwd", "", true},
		{"/etc/passwd", "", true},
		{"\\\\server\\share", "", true},
		{"C:\\resume.pdf", "", true},
		{"..", "", true},
		{"", "", true},
		{"   ", "", true},
		{"...", "", true},
	}

	for _, tc := range cases {
		got, err := SanitizeFileName(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidFileName) {
				t.Errorf("SanitizeFileName(%q) err = %v, want ErrInvalidFileName", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("SanitizeFileName(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
