package karabiner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/vk/hyperlayers/internal/ctxlog"
	"github.com/vk/hyperlayers/internal/fsutil"
)

// ErrInvalidDocument is returned when an existing file to merge into is not
// a karabiner.json document.
var ErrInvalidDocument = errors.New("existing document is not valid karabiner JSON")

var prettyOptions = &pretty.Options{Width: 80, Indent: "  "}

// Merge installs rules into the profile named by env inside an existing
// document, leaving every other key (devices, other profiles, simple
// modifications, global settings) untouched. The profile is appended when
// missing. An empty existing document yields the same output as Marshal.
// Comments and trailing commas in a hand-edited document are accepted and
// dropped from the result.
func Merge(existing []byte, env Envelope, rules []Rule) ([]byte, error) {
	if len(bytes.TrimSpace(existing)) == 0 {
		return Marshal(env.Document(rules))
	}
	existing = jsonc.ToJSON(existing)
	if !gjson.ValidBytes(existing) || !gjson.ParseBytes(existing).IsObject() {
		return nil, ErrInvalidDocument
	}

	doc := env.Document(rules)
	profile := doc.Profiles[0]

	profiles := gjson.GetBytes(existing, "profiles")
	if profiles.Exists() && !profiles.IsArray() {
		return nil, fmt.Errorf("%w: profiles is not an array", ErrInvalidDocument)
	}

	index := -1
	profiles.ForEach(func(key, value gjson.Result) bool {
		if value.Get("name").String() == profile.Name {
			index = int(key.Int())
			return false
		}
		return true
	})

	var (
		out []byte
		err error
	)
	if index >= 0 {
		raw, rerr := compact(profile.ComplexModifications.Rules)
		if rerr != nil {
			return nil, rerr
		}
		out, err = sjson.SetRawBytes(existing, fmt.Sprintf("profiles.%d.complex_modifications.rules", index), raw)
	} else {
		raw, rerr := compact(profile)
		if rerr != nil {
			return nil, rerr
		}
		out, err = sjson.SetRawBytes(existing, "profiles.-1", raw)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to merge rules: %w", err)
	}
	return pretty.PrettyOptions(out, prettyOptions), nil
}

// MergeFile merges rules into the document at path and replaces it
// atomically. A missing file is created.
func MergeFile(ctx context.Context, path string, env Envelope, rules []Rule) error {
	logger := ctxlog.FromContext(ctx)

	existing, err := ReadExisting(path)
	if err != nil {
		return err
	}
	data, err := Merge(existing, env, rules)
	if err != nil {
		return fmt.Errorf("failed to merge into %s: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Debug("Merging rules into karabiner document.", "path", path, "existing_bytes", len(existing), "bytes", len(data))
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("Karabiner configuration merged.", "path", path, "rules", len(rules))
	return nil
}

// ReadExisting returns the content of path, or nil when it does not exist.
func ReadExisting(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func compact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode karabiner rules: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
