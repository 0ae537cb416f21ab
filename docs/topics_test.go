package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// readmeTopics returns the topics listed in readme.md as "* name: description".
func readmeTopics(t *testing.T) []string {
	t.Helper()
	file, err := os.Open(Readme + ".md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); m != nil {
			topics = append(topics, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}

func TestTopics(t *testing.T) {
	// Every topic listed in the readme can be loaded.
	listed := make(map[string]bool)
	for _, topic := range readmeTopics(t) {
		listed[topic] = true
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}

	// Every file is listed in the readme.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		if topic := strings.TrimSuffix(file, ".md"); topic != Readme && !listed[topic] {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetAllTopics(t *testing.T) {
	got, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"calendar", "dates", "goals", "journal", "reports", "storage", "transactions"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetAllTopics() mismatch (-want +got):\n%s", diff)
	}
}

func TestGetTopics(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"# Dates", "# Goals", "# Storage"} {
		if !strings.Contains(all, title) {
			t.Errorf("GetTopic(*) does not contain %q", title)
		}
	}
	if strings.Contains(all, "mt topic <topic>") {
		t.Errorf("GetTopic(*) should not contain the readme")
	}

	if _, err := GetTopics("dates", "nope"); err == nil {
		t.Errorf("GetTopics(nope) should fail")
	}
}
