package filter

import (
	"fmt"
	"os/user"
	"strconv"
)

// Ref is a uid or gid filter value, tagged once at parse time as
// either a numeric id or an account name. A fully numeric value is
// always numeric, never a name that happens to look like a number.
type Ref struct {
	numeric bool
	id      int32
	name    string
}

func ParseRef(s string) Ref {
	if id, err := strconv.ParseInt(s, 10, 32); err == nil {
		return Ref{numeric: true, id: int32(id)}
	}
	return Ref{name: s}
}

func NumericRef(id int32) Ref {
	return Ref{numeric: true, id: id}
}

func NameRef(name string) Ref {
	return Ref{name: name}
}

func (r Ref) String() string {
	if r.numeric {
		return strconv.FormatInt(int64(r.id), 10)
	}
	return r.name
}

// Resolver maps account and group names to numeric ids through the
// system identity database. Tests substitute a fake.
type Resolver interface {
	LookupUser(name string) (int32, error)
	LookupGroup(name string) (int32, error)
}

// SystemResolver resolves names through the OS identity database.
type SystemResolver struct{}

func (SystemResolver) LookupUser(name string) (int32, error) {
	u, err := user.Lookup(name)
	if err != nil {
		return 0, err
	}
	return parseID(u.Uid)
}

func (SystemResolver) LookupGroup(name string) (int32, error) {
	g, err := user.LookupGroup(name)
	if err != nil {
		return 0, err
	}
	return parseID(g.Gid)
}

func parseID(s string) (int32, error) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("non-numeric id %q: %w", s, err)
	}
	return int32(id), nil
}
