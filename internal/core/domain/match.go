package domain

// MatchKind discriminates the three cases of a tree match query.
type MatchKind int

const (
	// MatchNone means no installed rock satisfies the requirement.
	MatchNone MatchKind = iota

	// MatchSingle means exactly one installed rock satisfies the requirement.
	MatchSingle

	// MatchMany means several installed rocks satisfy an underspecified
	// requirement. A decision taken for the requirement applies to all of them.
	MatchMany
)

// RockMatches is the result of asking the install tree which installed rocks
// satisfy a requirement. It is a tagged variant rather than a bare slice so
// that "no match" and "many matches" stay distinct cases at call sites.
type RockMatches struct {
	kind MatchKind
	ids  []LocalPackageID
}

// NoMatch returns the empty match result.
func NoMatch() RockMatches {
	return RockMatches{kind: MatchNone}
}

// SingleMatch returns a match result holding exactly one installed rock.
func SingleMatch(id LocalPackageID) RockMatches {
	return RockMatches{kind: MatchSingle, ids: []LocalPackageID{id}}
}

// ManyMatches returns a match result holding several installed rocks.
// It must be called with at least two identities; use SingleMatch or NoMatch
// for the smaller cases.
func ManyMatches(ids []LocalPackageID) RockMatches {
	return RockMatches{kind: MatchMany, ids: ids}
}

// MatchesOf folds an arbitrary identity list into the appropriate variant.
func MatchesOf(ids []LocalPackageID) RockMatches {
	switch len(ids) {
	case 0:
		return NoMatch()
	case 1:
		return SingleMatch(ids[0])
	default:
		return ManyMatches(ids)
	}
}

// Kind returns the variant tag.
func (m RockMatches) Kind() MatchKind {
	return m.kind
}

// IDs returns the matched identities. It is nil for MatchNone.
func (m RockMatches) IDs() []LocalPackageID {
	return m.ids
}

// IsEmpty reports whether no installed rock matched.
func (m RockMatches) IsEmpty() bool {
	return m.kind == MatchNone
}
