// Package resolve maps relative import specifiers to repository-relative
// paths. Bare specifiers (no leading ./ or ../) are not resolvable here;
// callers skip them instead of failing.
package resolve

import (
	"path"
	"strings"
)

// GeneratedPrefix is the repository-relative subtree that only exists after
// the engine compiler has run. Imports resolving under it are exempt from
// existence checks when the subtree is legitimately absent.
const GeneratedPrefix = "src/wasm/pkg"

// IsRelative reports whether specifier is a relative module specifier.
func IsRelative(specifier string) bool {
	return strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../")
}

// Target resolves a relative specifier against the repository-relative path
// of the referencing module and returns the slash-normalized target path.
// The second result is false for non-relative specifiers.
func Target(fromPath, specifier string) (string, bool) {
	if !IsRelative(specifier) {
		return "", false
	}
	dir := path.Dir(path.Clean(strings.ReplaceAll(fromPath, "\\", "/")))
	return path.Join(dir, specifier), true
}

// IsGenerated reports whether a resolved repository-relative path points
// into the generated engine-output subtree. A path-prefix check, not a
// substring match, so a module named "pkg_utils.js" is never exempted.
func IsGenerated(target string) bool {
	if target == GeneratedPrefix {
		return true
	}
	return strings.HasPrefix(target, GeneratedPrefix+"/")
}
