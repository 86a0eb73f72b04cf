package constants

import "github.com/retroenv/retrodex/internal/symbols"

// PendingAlias is an alias whose target index has no canonical name yet.
type PendingAlias struct {
	Name   string `json:"name" yaml:"name"`
	Target int    `json:"target" yaml:"target"`
}

// aliasResolver maps alias names to canonical names. Aliases of indexes
// without a canonical name are queued and retried after every assignment.
type aliasResolver struct {
	table   *symbols.Table
	aliases map[string]string
	pending []PendingAlias
}

func newAliasResolver(table *symbols.Table) *aliasResolver {
	return &aliasResolver{
		table:   table,
		aliases: make(map[string]string),
	}
}

// register records the alias immediately if the target has a canonical name,
// otherwise it is queued.
func (r *aliasResolver) register(name string, target int) {
	if canonical, ok := r.table.Name(target); ok {
		r.aliases[name] = canonical
		return
	}
	r.pending = append(r.pending, PendingAlias{Name: name, Target: target})
}

// retry promotes all queued aliases that can now be resolved, keeping the
// queue order of the remaining ones.
func (r *aliasResolver) retry() {
	if len(r.pending) == 0 {
		return
	}

	remaining := r.pending[:0]
	for _, alias := range r.pending {
		canonical, ok := r.table.Name(alias.Target)
		if !ok {
			remaining = append(remaining, alias)
			continue
		}
		r.aliases[alias.Name] = canonical
	}
	r.pending = remaining
}

// unresolved returns a copy of the queued aliases.
func (r *aliasResolver) unresolved() []PendingAlias {
	if len(r.pending) == 0 {
		return nil
	}
	result := make([]PendingAlias, len(r.pending))
	copy(result, r.pending)
	return result
}
