// Package license implements the "license" convention: dataset licensing
// information stored as a nested object under the "license" attribute key.
package license

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/zarr-experimental/conventions-go/pkg/conventions"
)

// Definition identifies the license convention.
var Definition = conventions.Definition{
	UUID:        uuid.MustParse("b77365e5-2b0c-4141-b917-c03b7c68e935"),
	SchemaURL:   "https://raw.githubusercontent.com/clbarnes/zarr-convention-license/refs/tags/v1/schema.json",
	SpecURL:     "https://github.com/clbarnes/zarr-convention-license/blob/v1/README.md",
	Name:        "license",
	Description: "Dataset licensing information.",
}

func init() {
	conventions.MustRegister(Definition)
}

// ErrEmpty reports a license with no identifying field.
var ErrEmpty = errors.New("license: at least one of spdx, url, text, file, path must be set")

// License describes the license applicable to the data. At least one field
// must be set; it is recommended to set only one. In order of preference:
// SPDX > URL > Text > File > Path.
type License struct {
	// SPDX license identifier. Should not be a multi-license expression.
	SPDX string `json:"spdx,omitempty"`
	// URL to the full license text.
	URL string `json:"url,omitempty"`
	// Full license text.
	Text string `json:"text,omitempty"`
	// Relative path to an object containing the full license text.
	File string `json:"file,omitempty"`
	// Relative path to a zarr node whose license metadata also applies
	// to this node.
	Path string `json:"path,omitempty"`
}

// NewSPDX returns a license identified by an SPDX identifier.
func NewSPDX(identifier string) License { return License{SPDX: identifier} }

// NewURL returns a license identified by a URL to the license text.
func NewURL(url string) License { return License{URL: url} }

// NewText returns a license carrying the full license text.
func NewText(text string) License { return License{Text: text} }

// NewFile returns a license referencing an object with the license text.
func NewFile(file string) License { return License{File: file} }

// NewPath returns a license referencing another zarr node's license.
func NewPath(path string) License { return License{Path: path} }

// Definition returns the convention identity.
func (License) Definition() conventions.Definition { return Definition }

// NestedKey returns the attribute key holding the payload.
func (License) NestedKey() string { return "license" }

// Validate returns ErrEmpty when no field is set.
func (l License) Validate() error {
	if l.SPDX == "" && l.URL == "" && l.Text == "" && l.File == "" && l.Path == "" {
		return ErrEmpty
	}
	return nil
}

// UnmarshalJSON rejects license objects with no identifying field.
func (l *License) UnmarshalJSON(data []byte) error {
	type plain License
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	out := License(p)
	if err := out.Validate(); err != nil {
		return err
	}
	*l = out
	return nil
}

// Builder assembles a License field by field. Created with NewBuilder.
type Builder struct {
	inner License
	short bool
}

// NewBuilder returns an empty license builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Short shortens the license metadata by keeping only the most preferred
// form that was set.
func (b *Builder) Short(short bool) *Builder {
	b.short = short
	return b
}

// SPDX sets the SPDX identifier; preferred over all other forms.
func (b *Builder) SPDX(spdx string) *Builder {
	b.inner.SPDX = spdx
	return b
}

// URL sets a URL to the full license text.
func (b *Builder) URL(url string) *Builder {
	b.inner.URL = url
	return b
}

// Text sets the full license text.
func (b *Builder) Text(text string) *Builder {
	b.inner.Text = text
	return b
}

// File sets a relative path to a file containing the license text.
func (b *Builder) File(file string) *Builder {
	b.inner.File = file
	return b
}

// Path sets a relative path to a zarr node with license metadata; the
// least preferred option.
func (b *Builder) Path(path string) *Builder {
	b.inner.Path = path
	return b
}

// Build returns the license. Fails with ErrEmpty when nothing was set.
func (b *Builder) Build() (License, error) {
	out := b.inner
	if b.short {
		switch {
		case out.SPDX != "":
			out.URL, out.Text, out.File, out.Path = "", "", "", ""
		case out.URL != "":
			out.Text, out.File, out.Path = "", "", ""
		case out.Text != "":
			out.File, out.Path = "", ""
		case out.File != "":
			out.Path = ""
		}
	}
	if err := out.Validate(); err != nil {
		return License{}, err
	}
	return out, nil
}
