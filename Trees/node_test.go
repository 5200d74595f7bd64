package Trees

import (
	"fmt"
	"testing"

	"github.com/g-m-twostay/binartree/Queues"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shape prints the subtree rooted at curI as key(left,right); leaves print as the bare key.
func (u *base[T, S]) shape(curI S) string {
	if curI == 0 {
		return ""
	}
	n := u.getIf(curI)
	if n.l == 0 && n.r == 0 {
		return fmt.Sprint(*u.getV(curI))
	}
	return fmt.Sprintf("%v(%s,%s)", *u.getV(curI), u.shape(n.l), u.shape(n.r))
}

func buildNodes(vs ...int) (base[int, uint32], uint32) {
	u := makeBase[int, uint32](0)
	var root uint32
	for _, v := range vs {
		u.insert(&root, v)
	}
	return u, root
}

func TestNode_Insert(t *testing.T) {
	u, root := buildNodes(3)
	assert.Equal(t, "3", u.shape(root))
	u.insert(&root, 2)
	u.insert(&root, 3)
	assert.Equal(t, "3(2,3)", u.shape(root))
	u.insert(&root, 3)
	assert.Equal(t, "3(2,3(,3))", u.shape(root), "equal keys chain to the right")
}

func TestNode_Find(t *testing.T) {
	u, root := buildNodes()
	assert.Zero(t, u.find(root, 3))
	u, root = buildNodes(3, 1, 4, 3)
	i := u.find(root, 3)
	require.NotZero(t, i)
	assert.Equal(t, root, i, "find stops at the topmost match")
	assert.Equal(t, "4(3,)", u.shape(u.find(root, 4)))
	assert.Zero(t, u.find(root, 2))
}

func TestNode_MinMax(t *testing.T) {
	u, root := buildNodes(5, 3, 8, 1, 4, 9, 7)
	assert.Equal(t, 1, *u.getV(u.min(root)))
	assert.Equal(t, 9, *u.getV(u.max(root)))
	assert.PanicsWithValue(t, EmptyTreeError{}, func() { u.min(0) })
	assert.PanicsWithValue(t, EmptyTreeError{}, func() { u.max(0) })
}

func TestNode_Walk(t *testing.T) {
	u, root := buildNodes(5, 6, 4, 7, 3, 8, 2, 9, 1)
	d := Queues.NewDeque[int]()
	st := u.walk(root, d, nil)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, d.Collect())
	u.walk(root, d, st)
	assert.Equal(t, 9, d.Len(), "walking again gives a fresh sequence")
	u.walk(0, d, st)
	assert.Equal(t, 9, d.Len())
}

func TestNode_RecDrop(t *testing.T) {
	u, root := buildNodes(3, 1, 4, 3, 5, 6)
	assert.Equal(t, "3(1,4(3,5(,6)))", u.shape(root))
	four := u.find(root, 4)
	u.recDrop(u.getIf(four).r)
	u.getIf(four).r = 0
	assert.Equal(t, "3(1,4(3,))", u.shape(root))

	n := len(u.ifs)
	u.insert(&root, 7)
	u.insert(&root, 0)
	assert.Equal(t, n, len(u.ifs), "released nodes are reused")
	assert.Equal(t, "3(1(0,),4(3,7))", u.shape(root))
	u.insert(&root, 8)
	assert.Equal(t, n+1, len(u.ifs))
}

func TestNode_Remove(t *testing.T) {
	u, root := buildNodes(3, 1, 4, 3, 5, 6)
	found, orphans := u.remove(&root, 5)
	assert.True(t, found)
	assert.Equal(t, []int{6}, orphans.Collect())
	assert.Equal(t, "3(1,4(3,))", u.shape(root))

	found, orphans = u.remove(&root, 2)
	assert.False(t, found)
	assert.Nil(t, orphans)

	found, orphans = u.remove(&root, 3)
	assert.True(t, found)
	assert.Equal(t, []int{1, 3, 4}, orphans.Collect(), "left subtree first, then right")
	assert.Zero(t, root)
}

func TestNode_Corrupt(t *testing.T) {
	u, root := buildNodes(5, 3, 8, 3, 5, 9, 1)
	assert.False(t, u.corrupt(root))
	*u.getV(u.find(root, 9)) = 4
	assert.True(t, u.corrupt(root))

	u, root = buildNodes(5, 3, 4)
	*u.getV(u.find(root, 4)) = 5
	assert.True(t, u.corrupt(root), "a key equal to an ancestor can't be on its left")
}
