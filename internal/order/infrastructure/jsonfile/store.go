// Package jsonfile persists the whole shop as a single JSON document,
// the way the original db.json worked: {"shoes":[...],"orders":[...]}.
// Every mutation is a whole-document read-modify-write serialized by a
// process-wide mutex; the write goes through a temp file and rename so
// a crash never leaves a half-written store behind.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	catalog "github.com/matex-shoes/storefront/internal/catalog/domain"
	"github.com/matex-shoes/storefront/internal/order/domain"
)

type document struct {
	Shoes  []catalog.Shoe `json:"shoes"`
	Orders []domain.Order `json:"orders"`
}

type Store struct {
	log  *slog.Logger
	path string
	mu   sync.Mutex
}

func New(log *slog.Logger, path string) *Store {
	return &Store{log: log, path: path}
}

// Init creates the store file with empty collections if it is absent.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat store: %w", err)
	}

	return s.save(document{Shoes: []catalog.Shoe{}, Orders: []domain.Order{}})
}

func (s *Store) ListShoes(ctx context.Context) ([]catalog.Shoe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Shoes, nil
}

func (s *Store) GetShoe(ctx context.Context, id int64) (catalog.Shoe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return catalog.Shoe{}, err
	}
	for _, shoe := range doc.Shoes {
		if shoe.ID == id {
			return shoe, nil
		}
	}
	return catalog.Shoe{}, catalog.ErrShoeNotFound
}

func (s *Store) ListOrders(ctx context.Context) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Orders, nil
}

// AppendOrder marks every shoe in soldIDs sold, appends the order and
// writes the document back, all under the store mutex. Ids that match
// no shoe are skipped; a shoe already sold stays sold.
func (s *Store) AppendOrder(ctx context.Context, o domain.Order, soldIDs []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	for _, id := range soldIDs {
		found := false
		for i := range doc.Shoes {
			if doc.Shoes[i].ID == id {
				doc.Shoes[i].IsSoldOut = true
				found = true
				break
			}
		}
		if !found {
			s.log.Warn("sold product not in catalog", "shoe_id", id, "order_id", o.ID)
		}
	}

	doc.Orders = append(doc.Orders, o)
	return s.save(doc)
}

func (s *Store) load() (document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return document{}, fmt.Errorf("read store: %w", err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return document{}, fmt.Errorf("parse store: %w", err)
	}
	if doc.Shoes == nil {
		doc.Shoes = []catalog.Shoe{}
	}
	if doc.Orders == nil {
		doc.Orders = []domain.Order{}
	}
	return doc, nil
}

func (s *Store) save(doc document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".store-*")
	if err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}
