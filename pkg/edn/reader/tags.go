package reader

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/jindo-lang/edn/pkg/edn/value"
)

// defaultTagReaders is the process-wide default registry spec.md §9
// describes ("inst, uuid"), consulted after any per-call opts.Readers entry
// and before opts.Default.
var defaultTagReaders = map[string]TagFn{
	"inst": readInst,
	"uuid": readUUID,
	// ver is supplemental (not in spec.md): see SPEC_FULL.md §4 "Tag
	// Registry" for why a semver tag is a natural, low-risk addition.
	"ver": readSemver,
}

func readInst(v value.Value) (value.Value, error) {
	s, ok := v.(value.String)
	if !ok {
		return nil, fmt.Errorf("#inst requires a string, got %s", value.Repr(v))
	}
	t, err := time.Parse(time.RFC3339Nano, s.S)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s.S)
	}
	if err != nil {
		return nil, fmt.Errorf("#inst: invalid timestamp %q: %w", s.S, err)
	}
	return value.Inst{T: t}, nil
}

func readUUID(v value.Value) (value.Value, error) {
	s, ok := v.(value.String)
	if !ok {
		return nil, fmt.Errorf("#uuid requires a string, got %s", value.Repr(v))
	}
	hexDigits := strings.ReplaceAll(s.S, "-", "")
	if len(hexDigits) != 32 {
		return nil, fmt.Errorf("#uuid: invalid form %q", s.S)
	}
	raw, err := hex.DecodeString(hexDigits)
	if err != nil {
		return nil, fmt.Errorf("#uuid: invalid form %q: %w", s.S, err)
	}
	var u value.UUID
	copy(u.Bytes[:], raw)
	return u, nil
}

func readSemver(v value.Value) (value.Value, error) {
	s, ok := v.(value.String)
	if !ok {
		return nil, fmt.Errorf("#ver requires a string, got %s", value.Repr(v))
	}
	ver, err := semver.NewVersion(s.S)
	if err != nil {
		return nil, fmt.Errorf("#ver: %w", err)
	}
	return value.SemVer{V: ver}, nil
}
