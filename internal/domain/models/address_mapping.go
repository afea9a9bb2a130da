package models

import (
	"sort"

	"github.com/samber/lo"
)

// AddressPair is one contract name and its deployed address
type AddressPair struct {
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
}

// AddressMapping maps contract names to deployed addresses for a single chain
type AddressMapping map[string]string

// NewAddressMapping returns an empty mapping
func NewAddressMapping() AddressMapping {
	return make(AddressMapping)
}

// Set records an address for a contract name, replacing any previous value
func (m AddressMapping) Set(name, address string) {
	m[name] = address
}

// Get returns the address recorded for name
func (m AddressMapping) Get(name string) (string, bool) {
	address, ok := m[name]
	return address, ok
}

// Names returns the contract names in ascending order
func (m AddressMapping) Names() []string {
	names := lo.Keys(m)
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the mapping
func (m AddressMapping) Clone() AddressMapping {
	out := make(AddressMapping, len(m))
	for name, address := range m {
		out[name] = address
	}
	return out
}

// ChangeKind classifies what an update did to a single name
type ChangeKind string

const (
	ChangeAdded     ChangeKind = "added"
	ChangeUpdated   ChangeKind = "updated"
	ChangeUnchanged ChangeKind = "unchanged"
)

// AddressChange describes the effect of an update on one contract name
type AddressChange struct {
	Name       string     `json:"name" yaml:"name"`
	Kind       ChangeKind `json:"kind" yaml:"kind"`
	OldAddress string     `json:"oldAddress,omitempty" yaml:"oldAddress,omitempty"`
	NewAddress string     `json:"newAddress" yaml:"newAddress"`
}

// Merge applies pairs in order, later pairs for the same name winning, and
// returns one change per distinct name sorted by name. Changes compare the
// final value against what the mapping held before the merge.
func (m AddressMapping) Merge(pairs []AddressPair) []AddressChange {
	before := m.Clone()
	for _, pair := range pairs {
		m.Set(pair.Name, pair.Address)
	}

	names := lo.Uniq(lo.Map(pairs, func(p AddressPair, _ int) string { return p.Name }))
	sort.Strings(names)

	return lo.Map(names, func(name string, _ int) AddressChange {
		change := AddressChange{Name: name, NewAddress: m[name]}
		old, existed := before.Get(name)
		switch {
		case !existed:
			change.Kind = ChangeAdded
		case old == change.NewAddress:
			change.Kind = ChangeUnchanged
		default:
			change.Kind = ChangeUpdated
			change.OldAddress = old
		}
		return change
	})
}
