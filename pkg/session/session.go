// Package session scopes one mining run: it names the run, owns its output
// directory, and maintains the run index so past results stay discoverable.
package session

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/DrJoeShmo/bigdataclass2018/models"
	"gopkg.in/yaml.v3"
)

// Info is one entry in the run index.
type Info struct {
	SessionID string    `yaml:"session_id"`
	Created   time.Time `yaml:"created"`
	DBPath    string    `yaml:"db_path"`
	Corpora   []string  `yaml:"corpora"`
}

// Index is the sessions index persisted at <output-dir>/index.yaml.
type Index struct {
	Sessions []Info `yaml:"sessions"`
}

// Summary is the per-run result record written on success.
type Summary struct {
	SessionID string                        `yaml:"session_id"`
	Created   time.Time                     `yaml:"created"`
	Corpora   []models.CorpusStats          `yaml:"corpora"`
	TopWords  map[string][]models.WordCount `yaml:"top_words"`
}

// GenerateSessionID creates a timestamp-first session ID from corpus sources.
// Format: YYYY-MM-DDTHH-MM-{hash}; the hash is over the sorted source list so
// re-mining the same corpora in the same minute reuses the ID.
func GenerateSessionID(sources []string) string {
	normalized := make([]string, len(sources))
	copy(normalized, sources)
	sort.Strings(normalized)

	h := sha256.New()
	for _, s := range normalized {
		h.Write([]byte(s))
		h.Write([]byte("\n"))
	}
	shortHash := hex.EncodeToString(h.Sum(nil)[:6])

	timestamp := time.Now().Format("2006-01-02T15-04")
	return fmt.Sprintf("%s-%s", timestamp, shortHash)
}

// Dir returns the full path of a session directory.
func Dir(baseDir, sessionID string) string {
	return filepath.Join(baseDir, "sessions", sessionID)
}

// IndexPath returns the path of the session index file.
func IndexPath(baseDir string) string {
	return filepath.Join(baseDir, "index.yaml")
}

// EnsureDir creates the session directory structure if it doesn't exist.
func EnsureDir(baseDir, sessionID string) error {
	if err := os.MkdirAll(Dir(baseDir, sessionID), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	return nil
}

// WriteSummary persists the run summary as summary.yaml in the session dir.
func WriteSummary(baseDir string, s Summary) (string, error) {
	if err := EnsureDir(baseDir, s.SessionID); err != nil {
		return "", err
	}
	out, err := yaml.Marshal(&s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary: %w", err)
	}
	path := filepath.Join(Dir(baseDir, s.SessionID), "summary.yaml")
	if err := os.WriteFile(path, out, 0644); err != nil {
		return "", fmt.Errorf("failed to write summary: %w", err)
	}
	return path, nil
}

// LoadIndex reads the session index. A missing file yields an empty index.
func LoadIndex(baseDir string) (Index, error) {
	var index Index
	data, err := os.ReadFile(IndexPath(baseDir))
	if os.IsNotExist(err) {
		return index, nil
	}
	if err != nil {
		return index, fmt.Errorf("failed to read session index: %w", err)
	}
	if err := yaml.Unmarshal(data, &index); err != nil {
		return index, fmt.Errorf("failed to parse session index: %w", err)
	}
	return index, nil
}

// UpdateIndex adds or replaces a session entry and rewrites the index,
// newest first (the timestamp-first IDs sort chronologically).
func UpdateIndex(baseDir string, info Info) error {
	index, err := LoadIndex(baseDir)
	if err != nil {
		return err
	}

	found := false
	for i, s := range index.Sessions {
		if s.SessionID == info.SessionID {
			index.Sessions[i] = info
			found = true
			break
		}
	}
	if !found {
		index.Sessions = append(index.Sessions, info)
	}

	sort.Slice(index.Sessions, func(i, j int) bool {
		return index.Sessions[i].SessionID > index.Sessions[j].SessionID
	})

	out, err := yaml.Marshal(&index)
	if err != nil {
		return fmt.Errorf("failed to marshal session index: %w", err)
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(IndexPath(baseDir), out, 0644); err != nil {
		return fmt.Errorf("failed to write session index: %w", err)
	}
	return nil
}
