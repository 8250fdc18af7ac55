// Package metric provides identifiers for values exposed by running sequential tests.
package metric

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/go-logfmt/logfmt"
)

type metadata map[string]string

// Name is an identifier for an exposed value.  By convention the name ends in the kind
// of value it identifies, such as checkout_test_walk or checkout_test_count.  Optional
// metadata groups values from the same test.  Names marshal to a modified logfmt, e.g.
// checkout_test[arm=treatment value=walk]
type Name struct {
	name string
	md   metadata
}

// String marshals the name to its string representation, such as
// checkout_test[arm=treatment value=walk]
func (n Name) String() string {
	md, err := MarshalText(n.md)
	if err != nil {
		md = []byte{}
	}
	return n.name + string(md)
}

// NewName returns a new name with the associated metadata
func NewName(name string, md map[string]string) Name {
	return Name{name: name, md: md}
}

// NewNameFrom returns a copy of an existing name whose metadata can be extended without
// mutating the original
func NewNameFrom(n Name) Name {
	copiedMD := make(map[string]string)
	for k, v := range n.md {
		copiedMD[k] = v
	}
	return NewName(n.name, copiedMD)
}

// AddMetadata adds additional metadata upserted into the metadata map.
func (n Name) AddMetadata(md map[string]string) {
	for k, v := range md {
		n.md[k] = v
	}
}

// MarshalText returns the metadata encoded as a modified logfmt representation: an
// opening [, (key, value) pairs k=v in sorted key order, then a closing ].
func MarshalText(m metadata) ([]byte, error) {
	if m == nil {
		return []byte{}, nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b bytes.Buffer
	b.Write([]byte("["))
	e := logfmt.NewEncoder(&b)
	for _, k := range keys {
		if err := e.EncodeKeyval(k, m[k]); err != nil {
			return nil, fmt.Errorf("failed to encode %s=%s: %v", k, m[k], err)
		}
	}
	b.Write([]byte("]"))
	return b.Bytes(), nil
}
