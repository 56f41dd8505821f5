package ignore

import (
	"fmt"
	"path"
	"strings"

	"github.com/danwakefield/fnmatch"
)

// globFlags selects plain shell matching on strings: '*' also crosses '/',
// and a backslash in a pattern is a literal character.
const globFlags = fnmatch.FNM_NOESCAPE

// normalizePath converts Windows separators so every comparison works on
// forward-slash paths.
func normalizePath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// matchPattern reports whether pattern matches the normalized path p.
//
// Directory rules ("dir/") and rooted rules ("/dir") are checked first and
// independently; when either form applies the glob branches are skipped.
// Rooted rules compare by literal prefix, so "/build" also matches
// "build-tools". A non-nil error means the glob library failed on the
// pattern and the rule is treated as not matching.
func matchPattern(p, pattern string) (bool, error) {
	dirRule := strings.HasSuffix(pattern, "/")
	rooted := strings.HasPrefix(pattern, "/")

	if dirRule || rooted {
		if dirRule {
			dir := strings.TrimPrefix(strings.TrimSuffix(pattern, "/"), "/")
			if dir != "" && (p == dir || strings.HasPrefix(p, dir+"/")) {
				return true, nil
			}
		}
		if rooted {
			prefix := strings.TrimPrefix(pattern, "/")
			if prefix != "" && strings.HasPrefix(p, prefix) {
				return true, nil
			}
		}
		return false, nil
	}

	if strings.Contains(pattern, "**") {
		return glob(strings.ReplaceAll(pattern, "**", "*"), p)
	}

	ok, err := glob(pattern, p)
	if ok || err != nil {
		return ok, err
	}
	return glob(pattern, path.Base(p))
}

func glob(pattern, name string) (matched bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			matched, err = false, fmt.Errorf("ignore: pattern %q: %v", pattern, r)
		}
	}()
	return fnmatch.Match(pattern, name, globFlags), nil
}
