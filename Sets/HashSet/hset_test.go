package HashSet

import (
	"math/rand"
	"testing"
)

func TestHashSet_All(t *testing.T) {
	S := New[int](16, 7, 0)
	for i := 0; i < 10; i++ {
		if !S.Put(i) {
			t.Error("wrong put 1")
		}
		if S.Put(i) {
			t.Error("wrong put 2")
		}
	}
	for i := 0; i < 10; i++ {
		if !S.Has(i) {
			t.Error("wrong has 1")
		}
	}
	for i := 0; i < 5; i++ {
		if !S.Remove(i) {
			t.Error("wrong remove 1")
		}
		if S.Remove(i) {
			t.Error("wrong remove 2")
		}
	}
	for i := 0; i < 5; i++ {
		if S.Has(i) {
			t.Error("wrong has 2")
		}
	}
	if S.Size() != 5 {
		t.Errorf("size is %d, want 5", S.Size())
	}
}

func TestHashSet_Random(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	S := New[int](4, 1, 3)
	content := make(map[int]struct{})
	for range 20000 {
		v := rg.Intn(5000)
		if rg.Intn(3) == 0 {
			_, in := content[v]
			if S.Remove(v) != in {
				t.Fatalf("remove %d disagrees with map", v)
			}
			delete(content, v)
		} else {
			_, in := content[v]
			if S.Put(v) == in {
				t.Fatalf("put %d disagrees with map", v)
			}
			content[v] = struct{}{}
		}
	}
	if int(S.Size()) != len(content) {
		t.Errorf("set size is %d, want %d", S.Size(), len(content))
	}
	for k := range content {
		if !S.Has(k) {
			t.Errorf("set does not have key %v", k)
		}
	}
	n := 0
	S.Range(func(v int) bool {
		if _, in := content[v]; !in {
			t.Errorf("set has non existent key %v", v)
		}
		n++
		return true
	})
	if n != len(content) {
		t.Errorf("range visited %d, want %d", n, len(content))
	}
}

func TestHashSet_Strings(t *testing.T) {
	S := New[string](16, 0, 1)
	words := []string{"left", "right", "key", "node", "tree"}
	for _, w := range words {
		S.Put(w)
	}
	for _, w := range words {
		if !S.Has(string([]byte(w))) {
			t.Errorf("set does not have %q", w)
		}
	}
	if S.Has("root") {
		t.Error("set has root")
	}
	if S.Take() == "" {
		t.Error("take on non-empty set returned zero value")
	}
	S.Clear()
	if S.Size() != 0 || S.Has("tree") || S.Take() != "" {
		t.Error("clear left elements behind")
	}
}
