package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MiniShop/internal/catalog"
)

func product(t *testing.T, id string) catalog.Product {
	t.Helper()

	p, ok, err := catalog.NewMemStore().Get(context.Background(), id)
	require.NoError(t, err)
	require.True(t, ok, "seed product %s", id)
	return p
}

// TestNew_Empty verifies a new cart has no entries and a zero total.
func TestNew_Empty(t *testing.T) {
	t.Parallel()

	c := New()
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.Total().IsZero())
	assert.Equal(t, "Cart{products=[]}", c.String())
}

// TestAdd_DuplicatesAndTotal verifies duplicates are kept and summed.
func TestAdd_DuplicatesAndTotal(t *testing.T) {
	t.Parallel()

	c := New()
	shoes := product(t, "1")
	jeans := product(t, "2")

	c.Add(shoes)
	c.Add(jeans)
	c.Add(shoes)

	require.Equal(t, 3, c.Len())
	assert.Equal(t, "159.97", c.Total().StringFixed(2))

	items := c.Items()
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, "1", items[2].ID)
}

// TestTotal_MatchesSumOfAdds verifies the running total after every add in a sequence.
func TestTotal_MatchesSumOfAdds(t *testing.T) {
	t.Parallel()

	c := New()
	want := decimal.Zero
	for _, id := range []string{"5", "4", "4", "3", "1", "2", "5"} {
		p := product(t, id)
		c.Add(p)
		want = want.Add(p.Price)
		assert.True(t, want.Equal(c.Total()), "after %s: got %s want %s", id, c.Total(), want)
	}
}

// TestRemove verifies only the first equal entry is removed and misses are no-ops.
func TestRemove(t *testing.T) {
	t.Parallel()

	c := New()
	shoes := product(t, "1")
	bag := product(t, "5")

	c.Add(shoes)
	c.Add(bag)
	c.Add(shoes)

	assert.True(t, c.Remove(shoes))
	require.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"5", "1"}, []string{c.Items()[0].ID, c.Items()[1].ID})

	assert.False(t, c.Remove(product(t, "3")))
	assert.Equal(t, 2, c.Len())
}

// TestClear verifies Clear empties the cart.
func TestClear(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add(product(t, "3"))
	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.True(t, c.Total().IsZero())
	assert.Equal(t, "Cart{products=[]}", c.String())
}

// TestItems_IsCopy verifies callers cannot mutate the cart through Items.
func TestItems_IsCopy(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add(product(t, "2"))

	items := c.Items()
	items[0].Name = "changed"

	assert.Equal(t, "Jeans", c.Items()[0].Name)
}

// TestString verifies the listing format with several entries.
func TestString(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add(product(t, "1"))
	c.Add(product(t, "4"))

	assert.Equal(t,
		"Cart{products=[Product{id='1', name='Running Shoes', category='Shoes', price=59.99}, "+
			"Product{id='4', name='Baseball Cap', category='Caps and Hats', price=14.99}]}",
		c.String())
}
