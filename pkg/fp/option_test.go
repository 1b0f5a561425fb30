package fp

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromPointer(t *testing.T) {
	assert.False(t, IsSome(FromPointer[int](nil)))

	v := 42
	opt := FromPointer(&v)
	assert.True(t, IsSome(opt))
	assert.Equal(t, 42, GetOrElse(0)(opt))
}

func TestToPointer(t *testing.T) {
	assert.Nil(t, ToPointer(None[string]()))

	p := ToPointer(Some("x"))
	assert.NotNil(t, p)
	assert.Equal(t, "x", *p)
}

func TestFirst(t *testing.T) {
	assert.False(t, IsSome(First([]int{})))
	assert.Equal(t, 1, GetOrElse(0)(First([]int{1, 2, 3})))
}

func TestMapChainFilter(t *testing.T) {
	toUpper := Map(strings.ToUpper)
	assert.Equal(t, "HI", GetOrElse("")(toUpper(Some("hi"))))
	assert.Equal(t, "", GetOrElse("")(toUpper(None[string]())))

	parse := Chain(func(s string) Option[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return None[int]()
		}
		return Some(n)
	})
	assert.Equal(t, 7, GetOrElse(0)(parse(Some("7"))))
	assert.Equal(t, 0, GetOrElse(0)(parse(Some("seven"))))

	positive := Filter(func(n int) bool { return n > 0 })
	assert.True(t, IsSome(positive(Some(1))))
	assert.False(t, IsSome(positive(Some(-1))))
}
