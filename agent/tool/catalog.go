// Package tool implements the domain tools behind contract.ToolGateway:
// product search, size recommendation, delivery estimates, order lookup, and
// the cancellation-eligibility check. Everything is a pure function over the
// JSON datasets plus a reference clock; each call re-reads its data source.
package tool

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	contractx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/contract"
	statex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/state"
)

const (
	productsFile = "products.json"
	ordersFile   = "orders.json"
)

type Config struct {
	DataDir string `envconfig:"DATA_DIR" split_words:"true" default:"data"`

	// NowISO overrides the evaluation clock with a fixed RFC3339 timestamp
	// (trailing Z means UTC). Required for deterministic policy testing. A
	// malformed value fails construction; it never falls back to the wall
	// clock silently.
	NowISO string `envconfig:"NOW_ISO" split_words:"true"`
}

// CatalogOption customizes a Catalog.
type CatalogOption func(*Catalog)

// WithClock replaces the evaluation clock. Takes precedence over NowISO.
func WithClock(now func() time.Time) CatalogOption {
	return func(c *Catalog) {
		if now != nil {
			c.now = now
		}
	}
}

// Catalog serves all domain tools from the datasets under DataDir.
type Catalog struct {
	dataDir string
	now     func() time.Time
}

var _ contractx.ToolGateway = (*Catalog)(nil)

func NewCatalog(cfg Config, opts ...CatalogOption) (*Catalog, error) {
	dataDir := strings.TrimSpace(cfg.DataDir)
	if dataDir == "" {
		return nil, fmt.Errorf("%w: data dir is required", contractx.ErrConfig)
	}

	now, err := resolveClock(cfg.NowISO)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		dataDir: dataDir,
		now:     now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	for _, name := range []string{productsFile, ordersFile} {
		if _, err := os.Stat(filepath.Join(dataDir, name)); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", contractx.ErrDataSource, name, err)
		}
	}

	return c, nil
}

func resolveClock(nowISO string) (func() time.Time, error) {
	trimmed := strings.TrimSpace(nowISO)
	if trimmed == "" {
		return func() time.Time { return time.Now().UTC() }, nil
	}

	ts, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: parse now override %q: %v", contractx.ErrConfig, trimmed, err)
	}
	fixed := ts.UTC()
	return func() time.Time { return fixed }, nil
}

func (c *Catalog) loadProducts() ([]statex.Product, error) {
	var items []statex.Product
	if err := c.loadJSON(productsFile, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Catalog) loadOrders() ([]statex.Order, error) {
	var orders []statex.Order
	if err := c.loadJSON(ordersFile, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Catalog) loadJSON(name string, out any) error {
	payload, err := os.ReadFile(filepath.Join(c.dataDir, name))
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", contractx.ErrDataSource, name, err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", contractx.ErrDataSource, name, err)
	}
	return nil
}
