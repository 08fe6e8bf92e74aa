// Package naming chooses export destinations.
//
// Names are built from the current wall time, so two exports in the same
// second would collide; Namer detects that (against names it has issued and
// files already on disk) and disambiguates with a short random suffix.
package naming

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/clampvec/internal/export"
)

// DefaultLayout is the time layout used for file names, e.g.
// "2024-03-01_09-30-00".
const DefaultLayout = "2006-01-02_15-04-05"

// Namer issues unique destination paths.
//
// Not safe for concurrent use.
type Namer struct {
	// Dir is the directory names are placed in.
	Dir string

	// Layout formats the timestamp part of the name.
	Layout string

	// Now supplies the wall time. Defaults to time.Now.
	Now func() time.Time

	// Suffix supplies the disambiguator on collision.
	// Defaults to the first 8 hex characters of a random UUID.
	Suffix func() string

	issued map[string]bool
}

// New creates a Namer for dir. An empty layout selects DefaultLayout.
func New(dir, layout string) *Namer {
	if layout == "" {
		layout = DefaultLayout
	}
	return &Namer{Dir: dir, Layout: layout}
}

// Next returns a path in Dir for an export in format f that has not been
// issued before and does not exist on disk.
func (n *Namer) Next(f export.Format) string {
	if n.issued == nil {
		n.issued = make(map[string]bool)
	}

	stem := n.now().Format(n.Layout)
	name := filepath.Join(n.Dir, stem+f.Extension())
	for n.taken(name) {
		name = filepath.Join(n.Dir, stem+"-"+n.suffix()+f.Extension())
	}
	n.issued[name] = true
	return name
}

func (n *Namer) taken(name string) bool {
	if n.issued[name] {
		return true
	}
	_, err := os.Lstat(name)
	return !errors.Is(err, fs.ErrNotExist)
}

func (n *Namer) now() time.Time {
	if n.Now != nil {
		return n.Now()
	}
	return time.Now()
}

func (n *Namer) suffix() string {
	if n.Suffix != nil {
		return n.Suffix()
	}
	return uuid.NewString()[:8]
}
