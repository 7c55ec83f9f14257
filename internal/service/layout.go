package service

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// Layout says where the seeding number and team name sit in each row.
type Layout struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Sheet       string `toml:"sheet"`      // xlsx only; empty = first sheet
	NumberCol   int    `toml:"number_col"` // 0-based
	NameCol     int    `toml:"name_col"`   // 0-based
	Delimiter   string `toml:"delimiter"`  // csv only; empty = ","
}

// DefaultLayout reads the number from the first column and the name from the
// second, with no header row.
var DefaultLayout = Layout{
	Name:        "default",
	Description: "number in column 1, team name in column 2",
	NumberCol:   0,
	NameCol:     1,
	Delimiter:   ",",
}

type layoutFile struct {
	Layout []Layout `toml:"layout"`
}

// width is the number of fields a row needs for this layout.
func (l Layout) width() int {
	if l.NumberCol > l.NameCol {
		return l.NumberCol + 1
	}
	return l.NameCol + 1
}

func (l Layout) delimiter() rune {
	if l.Delimiter == "" {
		return ','
	}
	if l.Delimiter == `\t` {
		return '\t'
	}
	r, _ := utf8.DecodeRuneInString(l.Delimiter)
	return r
}

func (l Layout) validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("layout name required")
	}
	if l.NumberCol < 0 || l.NameCol < 0 {
		return fmt.Errorf("layout %s: columns must be >= 0", l.Name)
	}
	if l.NumberCol == l.NameCol {
		return fmt.Errorf("layout %s: number_col and name_col are both %d", l.Name, l.NameCol)
	}
	if l.Delimiter != "" && l.Delimiter != `\t` && utf8.RuneCountInString(l.Delimiter) != 1 {
		return fmt.Errorf("layout %s: delimiter must be one character", l.Name)
	}
	return nil
}

// ParseLayouts decodes [[layout]] blocks.
func ParseLayouts(data []byte) ([]Layout, error) {
	var lf layoutFile
	if _, err := toml.Decode(string(data), &lf); err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}
	for _, l := range lf.Layout {
		if err := l.validate(); err != nil {
			return nil, err
		}
	}
	return lf.Layout, nil
}

// LoadLayouts reads path and returns its layouts after DefaultLayout. A
// missing file yields just DefaultLayout. A file layout named "default"
// replaces the built-in one.
func LoadLayouts(path string) ([]Layout, error) {
	out := []Layout{DefaultLayout}
	if path == "" {
		return out, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, err
	}
	parsed, err := ParseLayouts(data)
	if err != nil {
		return nil, err
	}
	for _, l := range parsed {
		if strings.EqualFold(l.Name, DefaultLayout.Name) {
			out[0] = l
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// FindLayout picks a layout by case-insensitive name; empty means default.
func FindLayout(layouts []Layout, name string) (Layout, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultLayout.Name
	}
	for _, l := range layouts {
		if strings.EqualFold(l.Name, name) {
			return l, nil
		}
	}
	return Layout{}, fmt.Errorf("unknown import layout %q", name)
}
