package gridview

import (
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/pamsum/config"
	"github.com/katalvlaran/pamsum/store"
)

// Option configures New.
type Option func(*GridView)

// WithStore persists the grid view and its runs through p.
func WithStore(p store.Persistence) Option {
	return func(gv *GridView) { gv.store = p }
}

// WithLogger sets the logger; nil keeps the silent default.
func WithLogger(l *log.Logger) Option {
	return func(gv *GridView) {
		if l != nil {
			gv.logger = l
		}
	}
}

// WithConfig sets parameter defaults and run concurrency.
func WithConfig(cfg config.Config) Option {
	return func(gv *GridView) { gv.cfg = cfg }
}

// WithID sets the grid view id instead of a fresh UUID.
func WithID(id string) Option {
	return func(gv *GridView) {
		if id != "" {
			gv.id = id
		}
	}
}
