package lpmap

import (
	"strconv"
	"testing"
	"unsafe"
)

var sizes = []int{
	1 << 10,
	1 << 16,
	// 1 << 20,
}

func BenchmarkMapGet_Hit(b *testing.B) {
	b.Run("variant=std", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkStdGetHit[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdGetHit[uint64], genKeys[uint64]))
	})

	b.Run("variant=lpmap", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkMapGetHit[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkMapGetHit[uint64], genKeys[uint64]))
	})
}

func BenchmarkMapGet_Miss(b *testing.B) {
	b.Run("variant=std", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkStdGetMiss[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdGetMiss[uint64], genKeys[uint64]))
	})

	b.Run("variant=lpmap", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkMapGetMiss[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkMapGetMiss[uint64], genKeys[uint64]))
	})
}

func BenchmarkMapSet_Grow(b *testing.B) {
	b.Run("variant=lpmap", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkMapSetGrow[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkMapSetGrow[uint64], genKeys[uint64]))
	})
}

func BenchmarkMapGet_Parallel(b *testing.B) {
	m, err := New[string, int](WithHashFunc[string, int](HashString))
	if err != nil {
		b.Fatal(err)
	}

	keys := genKeys[string](0, 1<<16)
	for i, k := range keys {
		_ = m.Set(k, i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = m.Get(keys[i%len(keys)])
			i++
		}
	})
}

func benchmarkStdGetHit[K comparable](b *testing.B, capacity int, genKeys func(start, end int) []K) {
	m := make(map[K]int, capacity)
	keys := genKeys(0, capacity*3/4)
	for i, k := range keys {
		m[k] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[keys[i%len(keys)]]
	}
}

func benchmarkMapGetHit[K comparable](b *testing.B, capacity int, genKeys func(start, end int) []K) {
	m := newBenchMap[K](b, capacity)
	keys := genKeys(0, capacity*3/4)
	for i, k := range keys {
		_ = m.Set(k, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(keys[i%len(keys)])
	}
}

func benchmarkStdGetMiss[K comparable](b *testing.B, capacity int, genKeys func(start, end int) []K) {
	m := make(map[K]int, capacity)
	keys := genKeys(0, capacity*3/4)
	misses := genKeys(-capacity, 0)
	for i, k := range keys {
		m[k] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[misses[i%len(misses)]]
	}
}

func benchmarkMapGetMiss[K comparable](b *testing.B, capacity int, genKeys func(start, end int) []K) {
	m := newBenchMap[K](b, capacity)
	keys := genKeys(0, capacity*3/4)
	misses := genKeys(-capacity, 0)
	for i, k := range keys {
		_ = m.Set(k, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(misses[i%len(misses)])
	}
}

func benchmarkMapSetGrow[K comparable](b *testing.B, capacity int, genKeys func(start, end int) []K) {
	keys := genKeys(0, capacity)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := newBenchMap[K](b, DefaultCapacity)
		b.StartTimer()

		for j, key := range keys {
			_ = m.Set(key, j)
		}
	}
}

func newBenchMap[K comparable](b *testing.B, capacity int) *Map[K, int] {
	m, err := New(WithCapacity[K, int](capacity))
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func genKeys[K comparable](start, end int) []K {
	var k K
	switch any(k).(type) {
	case uint64:
		keys := make([]uint64, end-start)
		for i := range keys {
			keys[i] = uint64(start + i)
		}
		return unsafeConvertSlice[K](keys)
	case string:
		keys := make([]string, end-start)
		for i := range keys {
			keys[i] = "key-" + strconv.Itoa(start+i)
		}
		return unsafeConvertSlice[K](keys)
	default:
		panic("not reached")
	}
}

//go:nocheckptr
func unsafeConvertSlice[Dest any, Src any](s []Src) []Dest {
	return unsafe.Slice((*Dest)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

func benchSimulateLoad[K comparable](
	benchFunc func(b *testing.B, capacity int, keysFunc func(start, end int) []K),
	keysFunc func(start, end int) []K,
) func(b *testing.B) {
	return func(b *testing.B) {
		for _, size := range sizes {
			b.Run("capacity="+strconv.Itoa(size), func(b *testing.B) {
				benchFunc(b, size, keysFunc)
			})
		}
	}
}
