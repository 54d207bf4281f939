package setup

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Book is a YAML file of named positions. Results computed for a position
// can be stored on it and written back with Save.
type Book struct {
	Positions []*Position

	posMap   map[string]*Position
	filename string
}

func New(filename string) *Book {
	return &Book{
		posMap:   make(map[string]*Position),
		filename: filename,
	}
}

func Load(filename string) (*Book, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("'%s': %v", filename, err)
	}

	book, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("'%s': %v", filename, err)
	}
	book.filename = filename

	return book, nil
}

// Parse decodes a book from YAML. Every position must have a unique,
// non-empty name.
func Parse(data []byte) (*Book, error) {
	book := New("")

	if err := yaml.Unmarshal(data, &book.Positions); err != nil {
		return nil, err
	}

	for i, pos := range book.Positions {
		if pos == nil {
			return nil, fmt.Errorf("position %d is empty", i+1)
		}
		if pos.Name == "" {
			return nil, fmt.Errorf("position %d has no name", i+1)
		}
		if _, found := book.posMap[pos.Name]; found {
			return nil, fmt.Errorf("position '%s' duplicated", pos.Name)
		}
		book.posMap[pos.Name] = pos
	}

	return book, nil
}

func (b *Book) Get(name string) (*Position, bool) {
	pos, ok := b.posMap[name]
	return pos, ok
}

// Add inserts pos, replacing any position with the same name in place.
func (b *Book) Add(pos *Position) {
	if _, ok := b.posMap[pos.Name]; ok {
		for i := range b.Positions {
			if b.Positions[i].Name == pos.Name {
				b.Positions[i] = pos
				break
			}
		}
	} else {
		b.Positions = append(b.Positions, pos)
	}
	b.posMap[pos.Name] = pos
}

func (b *Book) Len() int {
	return len(b.Positions)
}

func (b *Book) Filename() string {
	return b.filename
}

func (b *Book) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(b.Positions); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b *Book) Save() error {
	return b.SaveAs(b.filename)
}

func (b *Book) SaveAs(filename string) error {
	if filename == "" {
		return fmt.Errorf("book has no filename")
	}

	data, err := b.Marshal()
	if err != nil {
		return fmt.Errorf("'%s': %v", filename, err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write file '%s': %v", filename, err)
	}

	b.filename = filename
	return nil
}
