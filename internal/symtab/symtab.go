package symtab

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"gopkg.in/yaml.v3"
)

// Table maps symbol names to 32-bit values; it implements expr.Resolver.
type Table struct {
	syms map[string]int32

	// OnModify, when not nil, is called after any change to the table.
	OnModify func()
}

// Resolve returns the value of a named symbol.
func (tab *Table) Resolve(name string) (int32, bool) {
	value, ok := tab.syms[name]
	return value, ok
}

// Len returns the number of symbols defined.
func (tab *Table) Len() int { return len(tab.syms) }

// Names returns all symbol names in sorted order.
func (tab *Table) Names() []string {
	names := make([]string, 0, len(tab.syms))
	for name := range tab.syms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set defines or redefines a symbol; the name must be one that an address
// expression can refer to.
func (tab *Table) Set(name string, value int32) error {
	if err := CheckName(name); err != nil {
		return err
	}
	if tab.syms == nil {
		tab.syms = make(map[string]int32)
	}
	tab.syms[name] = value
	tab.modified()
	return nil
}

// Delete removes a symbol, returning false if it was not defined.
func (tab *Table) Delete(name string) bool {
	if _, defined := tab.syms[name]; !defined {
		return false
	}
	delete(tab.syms, name)
	tab.modified()
	return true
}

// Clear removes all symbols.
func (tab *Table) Clear() {
	tab.syms = nil
	tab.modified()
}

func (tab *Table) modified() {
	if tab.OnModify != nil {
		tab.OnModify()
	}
}

var errEmptyName = errors.New("empty symbol name")

// CheckName returns an error unless name consists only of letters, digits,
// and any of "._$:", and does not start with a digit.
func CheckName(name string) error {
	if name == "" {
		return errEmptyName
	}
	if c := name[0]; '0' <= c && c <= '9' {
		return fmt.Errorf("invalid symbol name %q: starts with a digit", name)
	}
	for i := 0; i < len(name); i++ {
		switch c := name[i]; {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		case c == '.', c == '_', c == '$', c == ':':
		default:
			return fmt.Errorf("invalid symbol name %q: illegal character %q", name, c)
		}
	}
	return nil
}

// Load reads a YAML mapping of symbol names to integer values, adding them
// to the table. Values may be anything from math.MinInt32 to math.MaxUint32;
// the low 32 bits are kept. Nothing is added if any entry is invalid.
func (tab *Table) Load(r io.Reader) error {
	var raw map[string]int64
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return fmt.Errorf("unable to decode symbols: %w", err)
	}

	syms := make(map[string]int32, len(raw))
	for name, value := range raw {
		if err := CheckName(name); err != nil {
			return err
		}
		if value < math.MinInt32 || value > math.MaxUint32 {
			return fmt.Errorf("symbol %v value %v out of range", name, value)
		}
		syms[name] = int32(uint32(value))
	}
	if len(syms) == 0 {
		return nil
	}

	if tab.syms == nil {
		tab.syms = make(map[string]int32, len(syms))
	}
	for name, value := range syms {
		tab.syms[name] = value
	}
	tab.modified()
	return nil
}

// Save writes all symbols as a YAML mapping, sorted by name, values in hex.
func (tab *Table) Save(w io.Writer) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range tab.Names() {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("0x%04x", uint32(tab.syms[name]))},
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("unable to encode symbols: %w", err)
	}
	return enc.Close()
}
