package i18n

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/en.json
var defaultMessages []byte

var (
	ErrInvalidTranslations = errors.New("invalid translations")
	ErrEmptyTranslations   = errors.New("empty translations")
)

// Bundle is the catalog of message formats used by errors and help output, keyed by
// message key. Formats are printed through a golang.org/x/text printer.
type Bundle struct {
	mu       sync.RWMutex
	lang     language.Tag
	messages map[string]string
	catalog  *catalog.Builder
	printer  *message.Printer
}

var defaultBundle *Bundle

func init() {
	var err error
	defaultBundle, err = NewBundle()
	if err != nil {
		panic("failed to load embedded messages: " + err.Error())
	}
}

// Default returns the bundle built from the embedded messages.
func Default() *Bundle {
	return defaultBundle
}

// NewBundle returns a fresh bundle loaded with the embedded messages. Callers may Add to it
// without affecting Default.
func NewBundle() (*Bundle, error) {
	b := NewEmptyBundle()
	if err := b.AddJSON(defaultMessages); err != nil {
		return nil, err
	}

	return b, nil
}

// NewEmptyBundle returns a bundle without messages.
func NewEmptyBundle() *Bundle {
	cat := catalog.NewBuilder()
	return &Bundle{
		lang:     language.English,
		messages: make(map[string]string),
		catalog:  cat,
		printer:  message.NewPrinter(language.English, message.Catalog(cat)),
	}
}

// NewBundleFromFS loads the JSON object of key/format pairs stored at file in fsys.
func NewBundleFromFS(fsys fs.FS, file string) (*Bundle, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, err
	}

	b := NewEmptyBundle()
	if err := b.AddJSON(data); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	return b, nil
}

// AddJSON merges a JSON object of key/format pairs into the bundle.
func (b *Bundle) AddJSON(data []byte) error {
	var messages map[string]string
	if err := json.Unmarshal(data, &messages); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTranslations, err)
	}

	return b.Add(messages)
}

// Add merges messages into the bundle, replacing the formats of existing keys.
func (b *Bundle) Add(messages map[string]string) error {
	if len(messages) == 0 {
		return ErrEmptyTranslations
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for key, format := range messages {
		if err := b.catalog.SetString(b.lang, key, format); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, key, err)
		}
		b.messages[key] = format
	}
	b.printer = message.NewPrinter(b.lang, message.Catalog(b.catalog))

	return nil
}

// T formats the message of key with args. Unknown keys are returned as they are.
func (b *Bundle) T(key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if _, ok := b.messages[key]; ok {
		return b.printer.Sprintf(key, args...)
	}

	return key
}

// Format returns the raw format of key.
func (b *Bundle) Format(key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	format, ok := b.messages[key]

	return format, ok
}

// HasKey reports whether key has a format.
func (b *Bundle) HasKey(key string) bool {
	_, ok := b.Format(key)
	return ok
}

// Keys returns every message key, sorted.
func (b *Bundle) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]string, 0, len(b.messages))
	for key := range b.messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
