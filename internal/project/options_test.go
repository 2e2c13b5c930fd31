package project

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWithFallback(t *testing.T) {
	flags := Options{Version: String("2.0"), Author: String(""), InstallRequires: []string{}}
	file := Options{Version: String("1.0"), Description: String("from file"), InstallRequires: []string{"requests"}}
	user := Options{Author: String("Jane Doe"), Description: String("from user"), AuthorEmail: String("jane@example.com")}

	got := flags.WithFallback(file).WithFallback(user)
	want := Options{
		Version:         String("2.0"),
		Description:     String("from file"),
		Author:          String(""),
		AuthorEmail:     String("jane@example.com"),
		InstallRequires: []string{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WithFallback() mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultValues(t *testing.T) {
	want := Defaults{Version: "0.1"}
	if diff := cmp.Diff(want, DefaultValues()); diff != "" {
		t.Errorf("DefaultValues() mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorKinds(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &Error{Kind: KindDirectoryExists, Msg: "directory x already exists"})

	if !errors.Is(err, ErrDirectoryExists) {
		t.Error("errors.Is(err, ErrDirectoryExists) = false, want true")
	}
	if errors.Is(err, ErrPermissionDenied) {
		t.Error("errors.Is(err, ErrPermissionDenied) = true, want false")
	}
	if got := KindOf(err); got != KindDirectoryExists {
		t.Errorf("KindOf() = %q, want %q", got, KindDirectoryExists)
	}
	if got := KindOf(errors.New("plain")); got != "" {
		t.Errorf("KindOf(plain) = %q, want empty", got)
	}
}
