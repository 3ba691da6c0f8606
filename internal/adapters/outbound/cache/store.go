package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/abdidvp/ftf/internal/domain"
)

// DefaultSize is the number of commands a Store remembers.
const DefaultSize = 256

type key struct {
	script   string
	output   string
	exitCode int
}

// Store memoizes corrections per command in a fixed-size LRU.
// It is safe for concurrent use.
type Store struct {
	lru *lru.Cache[key, []domain.CorrectedCommand]
}

// New creates a Store holding up to size commands. Sizes below 1 use
// DefaultSize.
func New(size int) *Store {
	if size < 1 {
		size = DefaultSize
	}
	c, err := lru.New[key, []domain.CorrectedCommand](size)
	if err != nil {
		// only reachable with a non-positive size
		panic(err)
	}
	return &Store{lru: c}
}

// Load returns a copy of the cached corrections for cmd.
func (s *Store) Load(cmd domain.Command) ([]domain.CorrectedCommand, bool) {
	v, ok := s.lru.Get(keyOf(cmd))
	if !ok {
		return nil, false
	}
	return append([]domain.CorrectedCommand(nil), v...), true
}

// Save stores corrections for cmd, evicting the least recently used entry
// when full.
func (s *Store) Save(cmd domain.Command, corrections []domain.CorrectedCommand) {
	s.lru.Add(keyOf(cmd), append([]domain.CorrectedCommand(nil), corrections...))
}

// Invalidate drops every entry.
func (s *Store) Invalidate() {
	s.lru.Purge()
}

func (s *Store) Len() int { return s.lru.Len() }

func keyOf(cmd domain.Command) key {
	return key{script: cmd.Script, output: cmd.Output, exitCode: cmd.ExitCode}
}
