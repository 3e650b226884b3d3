// Package itemdir — справочник предметов "имя -> запись каталога".
// Строится один раз при старте и дальше только читается, поэтому
// блокировки не нужны.
package itemdir

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/EgorLis/osrsbot/internal/osrsapi"
)

// MappingSource — откуда брать каталог (osrsapi.Client в проде).
type MappingSource interface {
	FetchMapping(ctx context.Context) ([]osrsapi.Item, error)
}

type Directory struct {
	items map[string]osrsapi.Item
}

// New строит справочник по именам в нижнем регистре.
// При совпадении имён побеждает последняя запись.
func New(items []osrsapi.Item) *Directory {
	m := make(map[string]osrsapi.Item, len(items))
	for _, it := range items {
		m[strings.ToLower(it.Name)] = it
	}
	return &Directory{items: m}
}

// Load скачивает каталог; при любой ошибке возвращает пустой справочник,
// старт бота при этом не прерывается.
func Load(ctx context.Context, src MappingSource, log *zap.Logger) *Directory {
	if log == nil {
		log = zap.NewNop()
	}
	items, err := src.FetchMapping(ctx)
	if err != nil {
		log.Warn("item mapping unavailable, starting with empty directory", zap.Error(err))
		return New(nil)
	}
	d := New(items)
	log.Info("item directory loaded", zap.Int("items", d.Len()))
	return d
}

// Lookup ищет предмет без учёта регистра.
func (d *Directory) Lookup(name string) (osrsapi.Item, bool) {
	if d == nil {
		return osrsapi.Item{}, false
	}
	it, ok := d.items[strings.ToLower(name)]
	return it, ok
}

func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.items)
}
