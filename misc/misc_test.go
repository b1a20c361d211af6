package misc

import "testing"

func TestIdentity(t *testing.T) {
	if GetAppName() != "sassval" {
		t.Errorf("GetAppName() = %q", GetAppName())
	}
	if GetVersion() == "" {
		t.Error("GetVersion() must not be empty")
	}
	if GetGitHash() == "" {
		t.Error("GetGitHash() must not be empty")
	}
}

func TestLinkedValuesWin(t *testing.T) {
	oldVersion, oldHash := version, buildHash
	t.Cleanup(func() { version, buildHash = oldVersion, oldHash })

	version, buildHash = "1.2.3", "abcdef"
	if GetVersion() != "1.2.3" {
		t.Errorf("GetVersion() = %q, want 1.2.3", GetVersion())
	}
	if GetGitHash() != "abcdef" {
		t.Errorf("GetGitHash() = %q, want abcdef", GetGitHash())
	}
}
