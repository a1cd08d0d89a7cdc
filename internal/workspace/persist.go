package workspace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/kingrea/openstudio/internal/idd"
)

// DocumentVersion is the on-disk format version written by Save.
const DocumentVersion = 1

// Document is the serialisable form of a workspace.
type Document struct {
	Version int              `yaml:"version"`
	Objects []ObjectDocument `yaml:"objects"`
}

// ObjectDocument is one persisted object. Fields excludes the handle, which
// is stored separately.
type ObjectDocument struct {
	Type   idd.ObjectType `yaml:"type"`
	Handle string         `yaml:"handle"`
	Fields []string       `yaml:"fields"`
	Groups [][]string     `yaml:"groups,omitempty"`
}

// Snapshot captures the current contents.
func (w *Workspace) Snapshot() Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	doc := Document{Version: DocumentVersion}
	for _, h := range w.order {
		obj := w.objects[h]
		od := ObjectDocument{
			Type:   obj.schema.Type,
			Handle: h.String(),
			Fields: trimTrailing(append([]string(nil), obj.fields[1:]...)),
		}
		for _, g := range obj.groups {
			od.Groups = append(od.Groups, append([]string(nil), g...))
		}
		doc.Objects = append(doc.Objects, od)
	}
	return doc
}

// Save writes the workspace as YAML.
func (w *Workspace) Save(out io.Writer) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(w.Snapshot()); err != nil {
		return fmt.Errorf("workspace: encode: %w", err)
	}
	return enc.Close()
}

// SaveFile writes the workspace to path, creating parent directories.
func (w *Workspace) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("workspace: ensure dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("workspace: create %s: %w", path, err)
	}
	if err := w.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load parses a YAML document produced by Save. Objects are created first and
// validated afterwards so references may point forward in the file.
func Load(in io.Reader, opts ...Option) (*Workspace, error) {
	var doc Document
	if err := yaml.NewDecoder(in).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return New(opts...), nil
		}
		return nil, fmt.Errorf("workspace: decode: %w", err)
	}
	return FromDocument(doc, opts...)
}

// LoadFile reads a workspace from path. A missing file yields an empty workspace.
func LoadFile(path string, opts ...Option) (*Workspace, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(opts...), nil
		}
		return nil, fmt.Errorf("workspace: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, opts...)
}

// FromDocument rebuilds a workspace from a snapshot.
func FromDocument(doc Document, opts ...Option) (*Workspace, error) {
	if doc.Version > DocumentVersion {
		return nil, fmt.Errorf("workspace: document version %d not supported", doc.Version)
	}
	w := New(opts...)
	w.mu.Lock()
	defer w.mu.Unlock()
	loaded := make([]*Object, 0, len(doc.Objects))
	for i, od := range doc.Objects {
		schema, ok := idd.Lookup(od.Type)
		if !ok {
			return nil, fmt.Errorf("objects[%d]: %w: %s", i, ErrUnknownType, od.Type)
		}
		h, err := uuid.Parse(od.Handle)
		if err != nil {
			return nil, fmt.Errorf("objects[%d]: handle %q: %w", i, od.Handle, err)
		}
		if _, dup := w.objects[h]; dup {
			return nil, fmt.Errorf("objects[%d]: duplicate handle %s", i, h)
		}
		if schema.Unique && len(w.byTypeLocked(schema.Type)) > 0 {
			return nil, fmt.Errorf("objects[%d]: %w: %s", i, ErrDuplicateUnique, schema.Type)
		}
		if len(od.Fields) > len(schema.Fields)-1 {
			return nil, fmt.Errorf("objects[%d]: %d fields for %s", i, len(od.Fields), schema.Type)
		}
		obj := w.newObjectLocked(schema, h)
		copy(obj.fields[1:], od.Fields)
		for _, g := range od.Groups {
			if len(g) > len(schema.Extensible) {
				return nil, fmt.Errorf("objects[%d]: group has %d fields", i, len(g))
			}
			group := make([]string, len(schema.Extensible))
			copy(group, g)
			obj.groups = append(obj.groups, group)
		}
		loaded = append(loaded, obj)
	}
	for i, obj := range loaded {
		for fi := 1; fi < len(obj.fields); fi++ {
			canonical, err := w.validateLocked(obj.schema.Fields[fi], obj.fields[fi])
			if err != nil {
				return nil, fmt.Errorf("objects[%d] %q: %w", i, obj.schema.Fields[fi].Name, err)
			}
			obj.fields[fi] = canonical
		}
		for gi, g := range obj.groups {
			for fi := range g {
				canonical, err := w.validateLocked(obj.schema.Extensible[fi], g[fi])
				if err != nil {
					return nil, fmt.Errorf("objects[%d] group %d %q: %w", i, gi, obj.schema.Extensible[fi].Name, err)
				}
				g[fi] = canonical
			}
		}
	}
	return w, nil
}

func trimTrailing(fields []string) []string {
	end := len(fields)
	for end > 0 && fields[end-1] == "" {
		end--
	}
	return fields[:end]
}
