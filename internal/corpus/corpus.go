// Package corpus reads the vocabulary list and novel texts from disk.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"charfreq/internal/domain"
)

// LoadVocabulary reads one target word per line, trimming and lowercasing each
// line and dropping blank ones. Order and duplicates are kept.
func LoadVocabulary(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		words = append(words, strings.ToLower(norm.NFC.String(line)))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("load vocabulary %s: %w", path, err)
	}
	return words, nil
}

// ReadNovel loads the full text of a novel.
func ReadNovel(path, title string) (domain.NovelDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.NovelDocument{}, fmt.Errorf("read novel %q: %w", title, err)
	}
	return domain.NovelDocument{Title: title, Path: path, Content: string(data)}, nil
}
