// Ordered JSON codec for the inventory file. encoding/json maps would
// scramble key order, so decoding walks the token stream and encoding
// builds the object by hand before indenting.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// File format errors.
var (
	errNotObject = errors.New("top-level value is not a JSON object")
	errBadQty    = errors.New("quantity is not a positive integer")
	errTrailing  = errors.New("trailing data after JSON object")
)

// decodeInventory parses a JSON object of item names to positive integer
// quantities, preserving key order. Any shape violation makes the whole
// file malformed; the caller substitutes an empty inventory.
func decodeInventory(data []byte) (*types.Inventory, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errNotObject
	}

	inv := types.NewInventory()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errNotObject
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing value for %q: %w", key, err)
		}
		num, ok := valTok.(json.Number)
		if !ok {
			return nil, fmt.Errorf("value for %q: %w", key, errBadQty)
		}
		qty, err := num.Int64()
		if err != nil || qty <= 0 {
			return nil, fmt.Errorf("value %s for %q: %w", num, key, errBadQty)
		}

		if err := inv.Add(key, int(qty)); err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailing
	}

	return inv, nil
}

// encodeInventory renders the inventory as an indented JSON object with
// keys in insertion order.
func encodeInventory(inv *types.Inventory) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, item := range inv.Items() {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, err := json.Marshal(item.Name)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", item.Name, err)
		}
		compact.Write(key)
		compact.WriteByte(':')
		fmt.Fprintf(&compact, "%d", item.Qty)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "    "); err != nil {
		return nil, fmt.Errorf("indent: %w", err)
	}
	return out.Bytes(), nil
}
