package layout

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/grafana/keylegend/log"
)

//nolint:gochecknoglobals
var (
	layouts = make(map[string]Layout)
	mu      sync.RWMutex

	pkgLogger = log.New(logrus.StandardLogger(), nil)
)

// LayoutFor returns the layout registered for the given language code.
// It returns the zero Layout for unknown languages.
func LayoutFor(language string) Layout {
	mu.RLock()
	defer mu.RUnlock()
	return layouts[language]
}

// Languages returns the registered language codes, sorted.
func Languages() []string {
	mu.RLock()
	defer mu.RUnlock()

	langs := make([]string, 0, len(layouts))
	for l := range layouts {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

// SetLogger replaces the logger used by layout construction. The
// default logs through the standard logrus logger.
func SetLogger(l *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	pkgLogger = l
}

func logger() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return pkgLogger
}

// Register the given layout under its language code.
// This function panics if a layout with the same language is already registered.
func register(l Layout) {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := layouts[l.Language]; ok {
		panic(fmt.Sprintf("keyboard layout already registered: %s", l.Language))
	}
	layouts[l.Language] = l
}
