package newapp

import (
	"fmt"
	"strings"
	"testing"
)

func TestLinkMapsLauncherFirstSchemeWins(t *testing.T) {
	var opened []string
	launcher := NewLinkMapsLauncher(func(rawURL string) error {
		opened = append(opened, rawURL)
		return nil
	})

	if !launcher.Open_With_Directions("Central Park") {
		t.Fatal("expected launch to succeed")
	}
	if len(opened) != 1 {
		t.Fatalf("expected a single attempt, got %v", opened)
	}
	if !strings.HasPrefix(opened[0], "google.navigation:") {
		t.Errorf("expected the deep link first, got %s", opened[0])
	}
	if !strings.Contains(opened[0], "Central+Park") {
		t.Errorf("expected the destination query-escaped, got %s", opened[0])
	}
}

func TestLinkMapsLauncherFallsBackThroughSchemes(t *testing.T) {
	var opened []string
	launcher := NewLinkMapsLauncher(func(rawURL string) error {
		opened = append(opened, rawURL)
		if len(opened) < 3 {
			return fmt.Errorf("no handler")
		}
		return nil
	})

	if !launcher.Open_With_Directions("the airport") {
		t.Fatal("expected the web fallback to succeed")
	}
	if len(opened) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(opened))
	}
	if !strings.HasPrefix(opened[1], "geo:") {
		t.Errorf("expected the geo URI second, got %s", opened[1])
	}
	if !strings.HasPrefix(opened[2], "https://www.google.com/maps/") {
		t.Errorf("expected the web URL last, got %s", opened[2])
	}
}

func TestLinkMapsLauncherAllSchemesFail(t *testing.T) {
	launcher := NewLinkMapsLauncher(func(string) error {
		return fmt.Errorf("no handler")
	})
	if launcher.Open_With_Directions("nowhere") {
		t.Error("expected failure when every scheme fails")
	}
}

func TestLinkMapsLauncherEmptyDestination(t *testing.T) {
	launcher := NewLinkMapsLauncher(func(string) error { return nil })
	if launcher.Open_With_Directions("") {
		t.Error("empty destination must not launch")
	}
}
