package testutil

import (
	"fmt"
	"strconv"
	"strings"
)

// ManifestScript is one entry of a package.json "scripts" object.
type ManifestScript struct {
	Name    string
	Command string
}

// ManifestBuilder builds package.json documents shaped like `npm init -y`
// output.
type ManifestBuilder struct {
	name    string
	version string
	scripts []ManifestScript
	noKey   bool
}

// NewManifestBuilder creates a builder with npm's default name, version,
// and test script.
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{
		name:    "backend",
		version: "1.0.0",
		scripts: []ManifestScript{
			{Name: "test", Command: `echo "Error: no test specified" && exit 1`},
		},
	}
}

// WithName sets the package name.
func (b *ManifestBuilder) WithName(name string) *ManifestBuilder {
	b.name = name
	return b
}

// WithScript appends a script entry.
func (b *ManifestBuilder) WithScript(name, command string) *ManifestBuilder {
	b.scripts = append(b.scripts, ManifestScript{Name: name, Command: command})
	return b
}

// WithoutScripts omits the "scripts" key entirely.
func (b *ManifestBuilder) WithoutScripts() *ManifestBuilder {
	b.scripts = nil
	b.noKey = true
	return b
}

// Build renders the manifest with two-space indentation and a trailing
// newline.
func (b *ManifestBuilder) Build() string {
	var sb strings.Builder

	sb.WriteString("{\n")
	fmt.Fprintf(&sb, "  \"name\": %s,\n", strconv.Quote(b.name))
	fmt.Fprintf(&sb, "  \"version\": %s,\n", strconv.Quote(b.version))
	sb.WriteString("  \"main\": \"index.js\",\n")

	if !b.noKey {
		if len(b.scripts) == 0 {
			sb.WriteString("  \"scripts\": {},\n")
		} else {
			sb.WriteString("  \"scripts\": {\n")
			for i, s := range b.scripts {
				fmt.Fprintf(&sb, "    %s: %s", strconv.Quote(s.Name), strconv.Quote(s.Command))
				if i < len(b.scripts)-1 {
					sb.WriteString(",")
				}
				sb.WriteString("\n")
			}
			sb.WriteString("  },\n")
		}
	}

	sb.WriteString("  \"license\": \"ISC\"\n")
	sb.WriteString("}\n")
	return sb.String()
}
