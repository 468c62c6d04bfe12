// Package i18n provides the translation registry conform errors render
// through: a process-wide, read-mostly table mapping (locale, message key)
// to a template, loaded once and then safe for concurrent lookup.
//
// The engine never reads translation files itself — a Registry is
// constructed by the host application (or via LoadFile) and handed to
// ConformError.Translate as a dependency, the same separation the teacher
// draws between its diag package (data-driven) and its logging/config
// collaborators (host-supplied).
package i18n

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no translation exists for a more specific tag
// and no fallback chain resolves one.
var DefaultLocale = language.English

// Registry is a locale-keyed table of message templates.
//
// Registry is safe for concurrent use: reads take an RLock, Load/LoadFile
// take a write lock. The intended lifecycle is load-then-freeze — load all
// locales during startup, then serve concurrent Render calls — but Registry
// does not enforce immutability; late loads are simply slower due to lock
// contention, matching spec.md §5 ("loading after first use is allowed but
// must be atomic per-key").
type Registry struct {
	mu      sync.RWMutex
	tables  map[language.Tag]map[string]string
	matcher language.Matcher
	tags    []language.Tag
	logger  *slog.Logger
}

// Option configures a Registry at construction.
type Option func(*Registry)

// WithLogger attaches a logger used to record fallback-to-key events at
// Debug level, mirroring instance.WithLogger's debug-on-normalization hook.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// NewRegistry returns an empty Registry with DefaultLocale pre-registered
// so lookups against an empty table fall back to key+args rather than
// panicking on an unmatched tag.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		tables: map[language.Tag]map[string]string{
			DefaultLocale: {},
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.rebuildMatcher()
	return r
}

// Load merges table into the registry under tag, overwriting any existing
// keys. Safe to call after Render has started being used elsewhere.
func (r *Registry) Load(tag language.Tag, table map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tables[tag]
	if !ok {
		existing = make(map[string]string, len(table))
		r.tables[tag] = existing
	}
	for k, v := range table {
		existing[k] = v
	}
	r.rebuildMatcherLocked()
}

// Render looks up the template for key under the best match for tag and
// formats it against args using fmt verbs (e.g. "expected %v, got %v").
//
// If the best match's table lacks key, the other loaded locales sharing
// tag's base language are tried (so en-US can use an en-GB template), then
// DefaultLocale.
//
// Returns (rendered, true) on a translation hit. On a miss it returns a
// fallback string built from the key and arguments (spec.md §4.9) and
// false; if a logger is configured, the fallback is logged at Debug.
func (r *Registry) Render(tag language.Tag, key string, args []any) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.matcher != nil && len(r.tags) > 0 {
		_, idx, _ := r.matcher.Match(tag)
		best := r.tags[idx]
		if table, ok := r.tables[best]; ok {
			if tmpl, ok := table[key]; ok {
				return fmt.Sprintf(tmpl, args...), true
			}
		}
	}

	base, _ := tag.Base()
	for _, t := range r.tags {
		if b, _ := t.Base(); b != base {
			continue
		}
		if tmpl, ok := r.tables[t][key]; ok {
			return fmt.Sprintf(tmpl, args...), true
		}
	}
	if tmpl, ok := r.tables[DefaultLocale][key]; ok {
		return fmt.Sprintf(tmpl, args...), true
	}

	if r.logger != nil {
		r.logger.Debug("i18n: no translation, falling back to key", "locale", tag.String(), "key", key)
	}
	return Fallback(key, args), false
}

// Fallback renders a message key and its arguments without a translation
// table, e.g. "type_error(String, Integer)". Exported so ConformError's own
// untranslated Message() can reuse the exact formatting Render falls back to.
func Fallback(key string, args []any) string {
	if len(args) == 0 {
		return key
	}
	s := key + "("
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%v", a)
	}
	return s + ")"
}

func (r *Registry) rebuildMatcher() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rebuildMatcherLocked()
}

// rebuildMatcherLocked rebuilds the match list with DefaultLocale forced
// into position 0. language.NewMatcher treats tags[0] as the match it
// returns when no candidate is a confident match, so DefaultLocale must be
// deterministically first rather than wherever map iteration happens to
// place it.
func (r *Registry) rebuildMatcherLocked() {
	tags := make([]language.Tag, 0, len(r.tables))
	tags = append(tags, DefaultLocale)
	for tag := range r.tables {
		if tag == DefaultLocale {
			continue
		}
		tags = append(tags, tag)
	}
	r.tags = tags
	r.matcher = language.NewMatcher(tags)
}
