package bench

import (
	"github.com/llxisdsh/pb"

	"github.com/homier/lpmap"
)

// store is the subset of map behaviour the sequential phases exercise.
type store interface {
	Store(key string, value int) error
	Load(key string) (int, bool)
	Delete(key string) bool
	Len() int
}

type lpmapStore struct {
	m *lpmap.Map[string, int]
}

func (s lpmapStore) Store(key string, value int) error { return s.m.Set(key, value) }
func (s lpmapStore) Load(key string) (int, bool)       { return s.m.Get(key) }
func (s lpmapStore) Delete(key string) bool            { return s.m.Delete(key) }
func (s lpmapStore) Len() int                          { return s.m.Len() }

// pbStore is the baseline: a concurrent map from llxisdsh/pb.
type pbStore struct {
	m *pb.MapOf[string, int]
}

func newPBStore(presize int) pbStore {
	if presize > 0 {
		return pbStore{m: pb.NewMapOf[string, int](pb.WithPresize(presize))}
	}

	return pbStore{m: pb.NewMapOf[string, int]()}
}

func (s pbStore) Store(key string, value int) error {
	s.m.Store(key, value)
	return nil
}

func (s pbStore) Load(key string) (int, bool) { return s.m.Load(key) }

func (s pbStore) Delete(key string) bool {
	_, loaded := s.m.LoadAndDelete(key)
	return loaded
}

func (s pbStore) Len() int { return s.m.Size() }
