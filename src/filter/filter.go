// Package filter selects the subset of a process-table snapshot that
// satisfies every specified attribute filter (AND semantics).
package filter

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/aalborgunilib/check-process-memory-usage/src/pkg/snapshot"
)

// Attr identifies which record attributes caused a match. Used only
// for highlighting in the verbose listing.
type Attr uint8

const (
	AttrPID Attr = 1 << iota
	AttrUID
	AttrGID
	AttrName
	AttrCmdline
)

func (a Attr) Has(b Attr) bool { return a&b != 0 }

// Spec is the set of attribute filters for one run. nil / zero-value
// fields are not applied; a spec with nothing set matches every
// record.
type Spec struct {
	PID     *int32
	UID     *Ref
	GID     *Ref
	Name    string // exact executable base name
	Cmdline string // case-sensitive substring of the command line

	// Exclude removes pids from the candidate set before any matching.
	// The caller puts its own pid here when the Cmdline filter is
	// active, since the filter text was passed as an argument and the
	// check would otherwise always self-match.
	Exclude map[int32]struct{}
}

// Result pairs a matched record with the attributes that matched it.
type Result struct {
	Record snapshot.Record
	Attrs  Attr
}

// Engine applies one Spec to snapshots. Name refs are resolved to
// numeric ids once, at first use.
type Engine struct {
	spec     Spec
	resolver Resolver
}

func NewEngine(spec Spec, resolver Resolver) *Engine {
	return &Engine{spec: spec, resolver: resolver}
}

// Match returns the records satisfying every specified filter, in
// snapshot order. The context deadline is checked once per record. An
// unresolvable uid/gid name is not an error: the filter simply cannot
// be satisfied and the match set for it is empty.
func (e *Engine) Match(ctx context.Context, records []snapshot.Record) ([]Result, error) {
	uid, uidOK := e.resolveRef(e.spec.UID, e.resolver.LookupUser)
	gid, gidOK := e.resolveRef(e.spec.GID, e.resolver.LookupGroup)

	var results []Result
	for _, rec := range records {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if _, excluded := e.spec.Exclude[rec.PID]; excluded {
			continue
		}

		var attrs Attr
		if e.spec.PID != nil {
			if rec.PID != *e.spec.PID {
				continue
			}
			attrs |= AttrPID
		}
		if e.spec.UID != nil {
			if !uidOK || rec.UID != uid {
				continue
			}
			attrs |= AttrUID
		}
		if e.spec.GID != nil {
			if !gidOK || rec.GID != gid {
				continue
			}
			attrs |= AttrGID
		}
		if e.spec.Name != "" {
			if rec.Name != e.spec.Name {
				continue
			}
			attrs |= AttrName
		}
		if e.spec.Cmdline != "" {
			if !strings.Contains(rec.Cmdline, e.spec.Cmdline) {
				continue
			}
			attrs |= AttrCmdline
		}

		results = append(results, Result{Record: rec, Attrs: attrs})
	}
	return results, nil
}

// resolveRef turns a uid/gid ref into a numeric id. Returns ok=false
// when the ref is a name the identity database does not know.
func (e *Engine) resolveRef(ref *Ref, lookup func(string) (int32, error)) (int32, bool) {
	if ref == nil {
		return 0, false
	}
	if ref.numeric {
		return ref.id, true
	}
	id, err := lookup(ref.name)
	if err != nil {
		logrus.WithField("name", ref.name).Debugf("identity lookup failed: %v", err)
		return 0, false
	}
	return id, true
}
