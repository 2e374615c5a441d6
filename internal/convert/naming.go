// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-slug"

	"github.com/pdiddy/json2md/pkg/types"
)

// namer assigns file names to the records of one source file. Names depend
// only on record content and position, so re-running on unchanged input
// overwrites the same files.
type namer struct {
	field string
	ext   string
	used  map[string]bool
}

func newNamer(opts Options) *namer {
	return &namer{field: opts.NameField, ext: opts.Ext, used: map[string]bool{}}
}

// name returns the file name for the record at 1-based position pos.
func (n *namer) name(rec *types.Record, pos int) string {
	base := FileStem(rec, pos, n.field)
	candidate := base
	for suffix := pos; n.used[candidate]; suffix++ {
		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}
	n.used[candidate] = true
	return candidate + n.ext
}

// FileStem returns the file name, without extension, for the record at
// 1-based position pos. With a name field, a string value of that field is
// slugified; otherwise, or when the value yields no usable slug, the
// position is used.
func FileStem(rec *types.Record, pos int, field string) string {
	fallback := strconv.Itoa(pos)
	if field == "" {
		return fallback
	}
	value, ok := rec.Get(field)
	if !ok {
		return fallback
	}
	s, ok := value.(string)
	if !ok {
		return fallback
	}
	stem, err := slug.Normalize(s)
	if err != nil || stem == "" {
		return fallback
	}
	return stem
}
