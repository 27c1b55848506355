package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Diagnostic is one fatal finding from a lint pass.
//
// RuleID is stable across versions (MH-CAT-xxx). Entries holds the indices
// of the implicated entries in catalog order; duplicate findings implicate
// both the original and the repeated entry.
type Diagnostic struct {
	RuleID  string
	Message string
	Entries []int
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.RuleID, d.Message)
}

// LintError aggregates every diagnostic from a failed lint pass. No partial
// registry is ever exposed alongside it.
type LintError struct {
	Diagnostics []Diagnostic
}

func (e *LintError) Error() string {
	if e == nil || len(e.Diagnostics) == 0 {
		return "catalog: lint failed"
	}
	msgs := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		msgs[i] = d.String()
	}
	return fmt.Sprintf("catalog: %d lint failure(s): %s", len(e.Diagnostics), strings.Join(msgs, "; "))
}

// Each rule must be deterministic and side-effect free, and must report
// every violation it finds, not only the first. Rule order is the
// evaluation order; keep it stable, diagnostics are emitted in this order.
var lintRules = []func(c Catalog) []Diagnostic{
	duplicateCodes,        // MH-CAT-001
	maxSizeWellFormed,     // MH-CAT-002
	maxSizeRespected,      // MH-CAT-003
	digestSizesConsistent, // MH-CAT-004
	digestTagsUnique,      // MH-CAT-005
}

// Lint checks the catalog and returns all diagnostics, in deterministic
// order. An empty result means the catalog is valid input for a registry.
func Lint(c Catalog) []Diagnostic {
	var out []Diagnostic
	for _, rule := range lintRules {
		out = append(out, rule(c)...)
	}
	return out
}

// duplicateCodes reports every entry whose code was already declared by an
// earlier entry, naming both locations.
//
// Codes are compared by evaluated integer value. (A well-known authoring
// front end compared the source spelling of the code expression instead,
// letting two spellings of the same number slip through; comparing values
// closes that gap.)
func duplicateCodes(c Catalog) []Diagnostic {
	var out []Diagnostic
	first := make(map[uint64]int, len(c.Entries))
	for i, e := range c.Entries {
		if j, seen := first[e.Code]; seen {
			out = append(out, Diagnostic{
				RuleID: "MH-CAT-001",
				Message: fmt.Sprintf("code 0x%x of entry %q (index %d) already declared by entry %q (index %d)",
					e.Code, e.Name, i, c.Entries[j].Name, j),
				Entries: []int{j, i},
			})
			continue
		}
		first[e.Code] = i
	}
	return out
}

// maxSizeWellFormed reports a bound that does not parse as a non-negative
// integer.
func maxSizeWellFormed(c Catalog) []Diagnostic {
	if _, err := strconv.ParseUint(c.MaxSize, 10, 64); err != nil {
		return []Diagnostic{{
			RuleID:  "MH-CAT-002",
			Message: fmt.Sprintf("malformed max size %q: must be a non-negative integer", c.MaxSize),
		}}
	}
	return nil
}

// maxSizeRespected reports every entry whose digest length exceeds the
// bound. Skipped entirely when enforcement is off or the bound is
// malformed (MH-CAT-002 already covers the latter).
func maxSizeRespected(c Catalog) []Diagnostic {
	if !c.EnforceMaxSize {
		return nil
	}
	bound, err := strconv.ParseUint(c.MaxSize, 10, 64)
	if err != nil {
		return nil
	}
	var out []Diagnostic
	for i, e := range c.Entries {
		if uint64(e.DigestSize) > bound {
			out = append(out, Diagnostic{
				RuleID: "MH-CAT-003",
				Message: fmt.Sprintf("entry %q (index %d): digest size %d exceeds max size %d",
					e.Name, i, e.DigestSize, bound),
				Entries: []int{i},
			})
		}
	}
	return out
}

// digestSizesConsistent reports entries whose declared digest size is
// negative, whose hasher is missing, or whose hasher output length
// disagrees with the declared size. The registry relies on these facts
// being true to wrap digests without re-checking.
func digestSizesConsistent(c Catalog) []Diagnostic {
	var out []Diagnostic
	for i, e := range c.Entries {
		switch {
		case e.DigestSize < 0:
			out = append(out, Diagnostic{
				RuleID:  "MH-CAT-004",
				Message: fmt.Sprintf("entry %q (index %d): negative digest size %d", e.Name, i, e.DigestSize),
				Entries: []int{i},
			})
		case e.Hasher == nil:
			out = append(out, Diagnostic{
				RuleID:  "MH-CAT-004",
				Message: fmt.Sprintf("entry %q (index %d): missing hasher", e.Name, i),
				Entries: []int{i},
			})
		case e.Hasher.OutputLength() != e.DigestSize:
			out = append(out, Diagnostic{
				RuleID: "MH-CAT-004",
				Message: fmt.Sprintf("entry %q (index %d): hasher output length %d disagrees with declared digest size %d",
					e.Name, i, e.Hasher.OutputLength(), e.DigestSize),
				Entries: []int{i},
			})
		}
	}
	return out
}

// digestTagsUnique reports every entry whose digest tag was already claimed
// by an earlier entry. The inverse digest-type -> code index is only
// well-defined when tags are injective.
func digestTagsUnique(c Catalog) []Diagnostic {
	var out []Diagnostic
	first := make(map[string]int, len(c.Entries))
	for i, e := range c.Entries {
		if e.DigestTag == "" {
			out = append(out, Diagnostic{
				RuleID:  "MH-CAT-005",
				Message: fmt.Sprintf("entry %q (index %d): empty digest tag", e.Name, i),
				Entries: []int{i},
			})
			continue
		}
		if j, seen := first[e.DigestTag]; seen {
			out = append(out, Diagnostic{
				RuleID: "MH-CAT-005",
				Message: fmt.Sprintf("digest tag %q of entry %q (index %d) already claimed by entry %q (index %d)",
					e.DigestTag, e.Name, i, c.Entries[j].Name, j),
				Entries: []int{j, i},
			})
			continue
		}
		first[e.DigestTag] = i
	}
	return out
}
