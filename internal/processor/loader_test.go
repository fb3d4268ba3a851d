/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 nanobeat */

package processor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDocumentCmdNamesFileOnError(t *testing.T) {
	msg, ok := LoadDocumentCmd("/no/such/dir/gone.json")().(LoadResultMsg)
	if !ok {
		t.Fatal("expected a LoadResultMsg")
	}
	if msg.Err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(msg.Err.Error(), "gone.json") {
		t.Errorf("error %q should name the file", msg.Err)
	}
}

func TestRefreshFilesCmdToleratesMissingDirs(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "map.json")
	if err := os.WriteFile(doc, []byte("{}"), 0o644); err != nil {
		t.Fatalf("writing %s: %v", doc, err)
	}

	cmd := RefreshFilesCmd([]string{"/no/such/dir", dir}, ".json")
	msg, ok := cmd().(FileListMsg)
	if !ok {
		t.Fatal("expected a FileListMsg")
	}
	if msg.Err != nil {
		t.Fatalf("a missing data dir must not fail the refresh: %v", msg.Err)
	}
	if len(msg.Files) != 1 || msg.Files[0].Path != doc {
		t.Errorf("Files = %+v, want just %s", msg.Files, doc)
	}
}
