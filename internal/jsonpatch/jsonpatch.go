// Package jsonpatch applies RFC 6902 patch documents to flat records whose
// members are addressed by name, such as "/titulo".
package jsonpatch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

const (
	OpAdd     = "add"
	OpRemove  = "remove"
	OpReplace = "replace"
	OpMove    = "move"
	OpCopy    = "copy"
	OpTest    = "test"
)

type Operation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	From  string          `json:"from,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

type Document []Operation

// Target is a record a patch can be applied to. Member names are passed in
// lower case.
type Target interface {
	// Get returns the current value of the member and whether it exists.
	Get(name string) (any, bool)
	// Set decodes value into the member.
	Set(name string, value json.RawMessage) error
	// Reset sets the member to its zero value.
	Reset(name string) error
}

// Error describes the operation that could not be applied.
type Error struct {
	Index  int
	Op     string
	Path   string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("patch operation %d (%s %s): %s", e.Index, e.Op, e.Path, e.Reason)
}

// Apply runs the operations of doc against target in order. It stops at the
// first failing operation, leaving earlier changes in place, so callers apply
// patches to a copy.
func Apply(doc Document, target Target) error {
	for i, op := range doc {
		if err := apply(op, target); err != nil {
			return &Error{Index: i, Op: op.Op, Path: op.Path, Reason: err.Error()}
		}
	}

	return nil
}

func apply(op Operation, target Target) error {
	name, err := memberName(op.Path)
	if err != nil {
		return err
	}

	if _, ok := target.Get(name); !ok {
		return fmt.Errorf("path %q does not exist", op.Path)
	}

	switch strings.ToLower(op.Op) {
	case OpAdd, OpReplace:
		if len(op.Value) == 0 {
			return fmt.Errorf("value is required")
		}

		// null clears the member, so required members fail validation later.
		if isNull(op.Value) {
			return target.Reset(name)
		}

		return target.Set(name, op.Value)

	case OpRemove:
		return target.Reset(name)

	case OpTest:
		if len(op.Value) == 0 {
			return fmt.Errorf("value is required")
		}

		current, _ := target.Get(name)

		equal, err := jsonEqual(current, op.Value)
		if err != nil {
			return err
		}
		if !equal {
			return fmt.Errorf("test failed")
		}

		return nil

	case OpCopy, OpMove:
		from, err := memberName(op.From)
		if err != nil {
			return err
		}

		value, ok := target.Get(from)
		if !ok {
			return fmt.Errorf("from %q does not exist", op.From)
		}

		raw, err := json.Marshal(value)
		if err != nil {
			return err
		}

		if strings.EqualFold(op.Op, OpMove) {
			if from == name {
				return nil
			}

			if err := target.Reset(from); err != nil {
				return err
			}
		}

		return target.Set(name, raw)

	default:
		return fmt.Errorf("unsupported operation %q", op.Op)
	}
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// memberName turns a JSON pointer with a single reference token into a lower
// case member name.
func memberName(pointer string) (string, error) {
	if !strings.HasPrefix(pointer, "/") {
		return "", fmt.Errorf("path %q must start with /", pointer)
	}

	token := pointer[1:]
	if token == "" || strings.Contains(token, "/") {
		return "", fmt.Errorf("path %q does not exist", pointer)
	}

	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")

	return strings.ToLower(token), nil
}

func jsonEqual(current any, raw json.RawMessage) (bool, error) {
	currentRaw, err := json.Marshal(current)
	if err != nil {
		return false, err
	}

	var a, b any

	if err := json.Unmarshal(currentRaw, &a); err != nil {
		return false, err
	}

	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&b); err != nil {
		return false, fmt.Errorf("value is not valid JSON")
	}

	return reflect.DeepEqual(a, b), nil
}
