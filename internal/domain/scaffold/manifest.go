package scaffold

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// scriptsKey is the only top-level manifest key the patcher writes.
const scriptsKey = "scripts"

//go:embed schema/package.schema.json
var manifestSchemaBytes []byte

var (
	manifestSchema     *jsonschema.Schema
	manifestSchemaOnce sync.Once
	manifestSchemaErr  error
)

// Script is one named entry of a manifest's scripts section.
type Script struct {
	Name    string
	Command string
}

// PatchManifest merges Scripts into the "scripts" section of the JSON
// manifest at Path. A missing manifest is a successful no-op.
type PatchManifest struct {
	Path    string
	Scripts []Script
}

// Kind returns KindPatchManifest.
func (a PatchManifest) Kind() Kind { return KindPatchManifest }

// Describe returns a short summary of the action.
func (a PatchManifest) Describe() string { return "patch " + a.Path }

// Execute reads, merges, and rewrites the manifest.
func (a PatchManifest) Execute(_ context.Context, env Env) Result {
	path := env.resolve(a.Path)

	if !env.FS.Exists(path) {
		env.Reporter.Skip(fmt.Sprintf("%s not found, skipping script injection.", a.Path))
		return NewResult(a, StatusSkipped, nil)
	}

	data, err := env.FS.ReadFile(path)
	if err != nil {
		return a.fail(env, FailureFilesystem, "Error reading "+a.Path, err)
	}

	patched, err := MergeScripts(data, a.Scripts)
	if err != nil {
		return a.fail(env, FailureManifest, "Error parsing "+a.Path, err)
	}

	if err := env.FS.WriteFile(path, patched, filePerm); err != nil {
		return a.fail(env, FailureFilesystem, "Error writing "+a.Path, err)
	}

	env.Reporter.Success("Updated " + a.Path)
	return NewResult(a, StatusDone, nil)
}

func (a PatchManifest) fail(env Env, kind FailureKind, msg string, err error) Result {
	env.Reporter.Failure(msg, err)
	return NewResult(a, StatusFailed, &ActionError{Kind: kind, Target: a.Path, Err: err})
}

// MergeScripts merges scripts into the "scripts" object of a JSON document.
// Matching keys are overwritten in place, new keys are appended in the order
// given, and every other key in the document keeps its position and value,
// whatever its type. A null "scripts" is treated as empty.
// The result is indented with two spaces and ends with a newline.
func MergeScripts(data []byte, scripts []Script) ([]byte, error) {
	if err := validateManifest(data); err != nil {
		return nil, err
	}

	doc := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}

	section := orderedmap.New[string, json.RawMessage]()
	if raw, ok := doc.Get(scriptsKey); ok && !isJSONNull(raw) {
		if err := json.Unmarshal(raw, section); err != nil {
			return nil, fmt.Errorf("decoding %q section: %w", scriptsKey, err)
		}
	}

	for _, s := range scripts {
		value, err := marshalString(s.Command)
		if err != nil {
			return nil, err
		}
		section.Set(s.Name, value)
	}

	encodedSection, err := encodeObject(section)
	if err != nil {
		return nil, err
	}
	doc.Set(scriptsKey, encodedSection)

	compact, err := encodeObject(doc)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("formatting manifest: %w", err)
	}
	// npm ends package.json with a newline; keep the file as npm would write it.
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// validateManifest parses data as strict JSON and checks its shape.
func validateManifest(data []byte) error {
	schema, err := getManifestSchema()
	if err != nil {
		return fmt.Errorf("loading manifest schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("unexpected manifest structure: %w", err)
	}
	return nil
}

func getManifestSchema() (*jsonschema.Schema, error) {
	manifestSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(manifestSchemaBytes))
		if err != nil {
			manifestSchemaErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("package.schema.json", doc); err != nil {
			manifestSchemaErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		manifestSchema, manifestSchemaErr = c.Compile("package.schema.json")
	})
	return manifestSchema, manifestSchemaErr
}

// encodeObject writes an ordered map as a compact JSON object. Values are
// already-encoded JSON and are copied through untouched.
func encodeObject(m *orderedmap.OrderedMap[string, json.RawMessage]) (json.RawMessage, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		if b.Len() > 1 {
			b.WriteByte(',')
		}
		key, err := marshalString(pair.Key)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(pair.Value)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// marshalString encodes s as a JSON string without HTML escaping, so that
// commands like "a && b" stay readable.
func marshalString(s string) (json.RawMessage, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encoding %q: %w", s, err)
	}
	return json.RawMessage(strings.TrimSuffix(b.String(), "\n")), nil
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
