package framework

// Capabilities is a list of strings describing optional features of the current test run,
// such as which identities have credentials configured. Tests use them to decide whether
// they can run at all.
type Capabilities []string

// Has returns true if the specified capability is in the list.
func (cs Capabilities) Has(name string) bool {
	for _, c := range cs {
		if c == name {
			return true
		}
	}
	return false
}

// HasAll returns true only if every one of the specified capabilities is in the list.
func (cs Capabilities) HasAll(names ...string) bool {
	for _, n := range names {
		if !cs.Has(n) {
			return false
		}
	}
	return true
}
