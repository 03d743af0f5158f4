package karabiner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vk/hyperlayers/internal/ctxlog"
	"github.com/vk/hyperlayers/internal/fsutil"
)

// DefaultProfileName is the profile the rules are installed into.
const DefaultProfileName = "Default"

// Document is the top-level karabiner.json structure.
type Document struct {
	Global   Global    `json:"global"`
	Profiles []Profile `json:"profiles"`
}

// Global holds the engine's application-wide settings.
type Global struct {
	ShowInMenuBar                    bool `json:"show_in_menu_bar"`
	AskForConfirmationBeforeQuitting bool `json:"ask_for_confirmation_before_quitting"`
	CheckForUpdatesOnStartup         bool `json:"check_for_updates_on_startup"`
	ShowProfileNameInMenuBar         bool `json:"show_profile_name_in_menu_bar"`
	UnsafeUI                         bool `json:"unsafe_ui"`
}

// Profile is a named set of complex modifications.
type Profile struct {
	Name                 string               `json:"name"`
	ComplexModifications ComplexModifications `json:"complex_modifications"`
}

// ComplexModifications wraps the ordered rule list of a profile.
type ComplexModifications struct {
	Rules []Rule `json:"rules"`
}

// Envelope carries everything the serializer needs besides the rules.
type Envelope struct {
	Global      Global
	ProfileName string
}

// DefaultEnvelope returns the settings every generated document ships with.
func DefaultEnvelope() Envelope {
	return Envelope{
		Global: Global{
			ShowInMenuBar:                    true,
			AskForConfirmationBeforeQuitting: false,
			CheckForUpdatesOnStartup:         true,
			ShowProfileNameInMenuBar:         false,
			UnsafeUI:                         false,
		},
		ProfileName: DefaultProfileName,
	}
}

// Document wraps rules in the envelope. A nil rule list encodes as [].
func (e Envelope) Document(rules []Rule) Document {
	if rules == nil {
		rules = []Rule{}
	}
	name := e.ProfileName
	if name == "" {
		name = DefaultProfileName
	}
	return Document{
		Global: e.Global,
		Profiles: []Profile{{
			Name:                 name,
			ComplexModifications: ComplexModifications{Rules: rules},
		}},
	}
}

// Encode writes doc as two-space indented JSON followed by a newline. HTML
// escaping is disabled so URLs in shell commands stay readable.
func Encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode karabiner document: %w", err)
	}
	return nil
}

// Marshal returns the encoded form of doc.
func Marshal(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes the rules inside env and replaces the file at path. The
// document is fully encoded before the file is touched, and the replacement
// is a rename, so a failure never leaves a truncated file behind.
func WriteFile(ctx context.Context, path string, env Envelope, rules []Rule) error {
	logger := ctxlog.FromContext(ctx)

	data, err := Marshal(env.Document(rules))
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Debug("Writing karabiner document.", "path", path, "bytes", len(data), "rules", len(rules))
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("Karabiner configuration written.", "path", path, "rules", len(rules))
	return nil
}
