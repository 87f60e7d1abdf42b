package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSink writes documents as pretty-printed JSON files under one output
// directory. Missing directories are created on first write.
type FileSink struct {
	dir string
}

// NewFileSink constructs a FileSink rooted at dir.
func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

// Dir returns the output directory.
func (s *FileSink) Dir() string { return s.dir }

// Write implements Sink. Documents are serialized with two-space indentation
// and a ".json" suffix is appended when the name does not carry one.
func (s *FileSink) Write(ctx context.Context, name string, doc any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document %q: %w", name, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %q: %w", s.dir, err)
	}

	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	return nil
}
