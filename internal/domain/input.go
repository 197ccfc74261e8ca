package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"unitgen.dev/pkg/unitgen/internal/adapter"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// DefaultIgnoreDirs are skipped while scanning a folder.
var DefaultIgnoreDirs = []string{"node_modules", ".git", "dist", "build", "coverage", ".next", ".cache", "out"}

const (
	sourceExt       = ".js"
	packageManifest = "package.json"
	usageHint       = "unitgen run <file-or-folder>"
)

// ResolveInput validates the user path and collects the JavaScript files to
// process. The returned selection always carries the messages to show; an
// unusable path also returns an error wrapping ErrInvalidInput.
func ResolveInput(fs adapter.SourceFSAdapter, userPath m.Path, ignoreDirs []string) (m.InputSelection, error) {
	if strings.TrimSpace(string(userPath)) == "" {
		return invalidInput("", "Missing path. Usage: "+usageHint)
	}

	normalized, err := fs.AbsPath(userPath)
	if err != nil {
		normalized = userPath
	}

	if !fs.Exists(normalized) {
		return invalidInput("", fmt.Sprintf("Path does not exist: %s", normalized))
	}

	info, err := fs.FileInfo(normalized)
	if err != nil {
		return invalidInput("", fmt.Sprintf("Unable to access: %s", normalized))
	}

	if !info.IsDir() {
		if !isSourceFile(string(normalized)) {
			sel, err := invalidInput(normalized, fmt.Sprintf("Not a .js file: %s", normalized))
			sel.Kind = m.InputFile

			return sel, err
		}

		return m.InputSelection{
			Kind:  m.InputFile,
			Root:  normalized,
			Files: []m.Path{normalized},
			Messages: []m.Message{
				{Level: m.LevelInfo, Text: fmt.Sprintf("Input: JavaScript file (%s)", normalized)},
			},
		}, nil
	}

	if ignoreDirs == nil {
		ignoreDirs = DefaultIgnoreDirs
	}

	files, err := collectSourceFiles(fs, normalized, ignoreDirs)
	if err != nil || len(files) == 0 {
		sel, invalid := invalidInput(normalized, fmt.Sprintf("No .js files found in folder: %s", normalized))
		sel.Kind = m.InputFolder

		return sel, invalid
	}

	sel := m.InputSelection{
		Kind:  m.InputFolder,
		Root:  normalized,
		Files: files,
	}

	if fs.Exists(fs.JoinPath(string(normalized), packageManifest)) {
		sel.Messages = append(sel.Messages, m.Message{Level: m.LevelInfo, Text: "Input: Node.js project folder (package.json found)"})
	} else {
		sel.Messages = append(sel.Messages, m.Message{Level: m.LevelWarn, Text: "No package.json found. Treating as a plain JS folder."})
	}

	sel.Messages = append(sel.Messages, m.Message{Level: m.LevelInfo, Text: fmt.Sprintf("Discovered %d .js file(s).", len(files))})

	return sel, nil
}

func invalidInput(root m.Path, text string) (m.InputSelection, error) {
	return m.InputSelection{
		Root:     root,
		Messages: []m.Message{{Level: m.LevelError, Text: text}},
	}, fmt.Errorf("%w: %s", m.ErrInvalidInput, text)
}

func collectSourceFiles(fs adapter.SourceFSAdapter, root m.Path, ignoreDirs []string) ([]m.Path, error) {
	ignored := make(map[string]struct{}, len(ignoreDirs))
	for _, dir := range ignoreDirs {
		ignored[dir] = struct{}{}
	}

	var files []m.Path

	err := fs.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			return nil
		}

		if info.IsDir() {
			if _, skip := ignored[info.Name()]; skip && path != string(root) {
				return filepath.SkipDir
			}

			return nil
		}

		if info.Mode().IsRegular() && isSourceFile(path) {
			files = append(files, m.Path(path))
		}

		return nil
	})

	return files, err
}

func isSourceFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), sourceExt)
}
