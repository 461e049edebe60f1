package usecase

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/m-mizutani/goerr/v2"
)

const (
	// SkinIniName is the metadata file expected at the root of every skin folder
	SkinIniName = "Skin.ini"

	nameMarker    = "Name: "
	nameSeparator = ": "
	byteOrderMark = "\ufeff"
)

var (
	// ErrNameNotFound is returned when Skin.ini has no "Name: " line
	ErrNameNotFound = goerr.New("no name field found")

	// ErrEmptyName is returned when the first "Name: " line has no value
	ErrEmptyName = goerr.New("name field is empty")
)

// ReadSkinName returns the display name declared by the first "Name: " line
// of the skin folder's Skin.ini.
func ReadSkinName(dir string) (string, error) {
	path, err := findSkinIni(dir)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to open skin metadata", goerr.V("path", path))
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, byteOrderMark)
			first = false
		}

		if !strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), nameMarker) {
			continue
		}

		_, value, _ := strings.Cut(line, nameSeparator)
		name := strings.TrimSpace(value)
		if name == "" {
			return "", goerr.Wrap(ErrEmptyName, "invalid skin metadata", goerr.V("path", path))
		}
		return name, nil
	}

	if err := scanner.Err(); err != nil {
		return "", goerr.Wrap(err, "failed to read skin metadata", goerr.V("path", path))
	}

	return "", goerr.Wrap(ErrNameNotFound, "invalid skin metadata", goerr.V("path", path))
}

// findSkinIni prefers the exact file name and falls back to a
// case-insensitive match, since skins made on Windows often ship "skin.ini".
func findSkinIni(dir string) (string, error) {
	path := filepath.Join(dir, SkinIniName)

	_, statErr := os.Stat(path)
	if statErr == nil {
		return path, nil
	}
	if !errors.Is(statErr, fs.ErrNotExist) {
		return "", goerr.Wrap(statErr, "failed to access skin metadata", goerr.V("path", path))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read skin folder", goerr.V("dir", dir))
	}
	for _, entry := range entries {
		if entry.Type().IsRegular() && strings.EqualFold(entry.Name(), SkinIniName) {
			return filepath.Join(dir, entry.Name()), nil
		}
	}

	return "", goerr.Wrap(statErr, "skin metadata file not found", goerr.V("path", path))
}
