package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceCartTotals(t *testing.T) {
	cart := Cart{
		7: {Quantity: 4, Unit: "kg"},
		3: {Quantity: 2, Unit: "ud", Size: "grande"},
	}
	products := map[int]Product{
		7: {ID: 7, Name: "Manzanas", Price: 2.50},
		3: {ID: 3, Name: "Lechuga", Price: 1.10},
	}

	lines, total, dropped := PriceCart(cart, products)

	assert.Empty(t, dropped)
	assert.Len(t, lines, 2)
	assert.InDelta(t, 2*1.10+4*2.50, total, 1e-9)

	// Ordered by product id.
	assert.Equal(t, 3, lines[0].Product.ID)
	assert.InDelta(t, 2.20, lines[0].Subtotal, 1e-9)
	assert.Equal(t, "grande", lines[0].Size)

	assert.Equal(t, 7, lines[1].Product.ID)
	assert.InDelta(t, 10.00, lines[1].Subtotal, 1e-9)
	assert.Equal(t, 2.50, lines[1].Product.Price)
}

func TestPriceCartDropsVanishedProducts(t *testing.T) {
	cart := Cart{
		7:  {Quantity: 4},
		42: {Quantity: 1},
	}
	products := map[int]Product{
		7: {ID: 7, Price: 2.50},
	}

	lines, total, dropped := PriceCart(cart, products)

	assert.Len(t, lines, 1)
	assert.InDelta(t, 10.00, total, 1e-9)
	assert.Equal(t, []int{42}, dropped)
}

func TestPriceCartAllVanished(t *testing.T) {
	cart := Cart{42: {Quantity: 1}, 43: {Quantity: 2}}

	lines, total, dropped := PriceCart(cart, map[int]Product{})

	assert.Empty(t, lines)
	assert.Zero(t, total)
	assert.ElementsMatch(t, []int{42, 43}, dropped)
}

func TestPriceCartEmpty(t *testing.T) {
	lines, total, dropped := PriceCart(Cart{}, map[int]Product{1: {ID: 1, Price: 9.99}})

	assert.Empty(t, lines)
	assert.Zero(t, total)
	assert.Empty(t, dropped)
}

func TestPriceCartUsesCurrentPriceNotCartState(t *testing.T) {
	// The cart never carries a price; whatever the catalog says now wins.
	cart := Cart{7: {Quantity: 4}}

	_, before, _ := PriceCart(cart, map[int]Product{7: {ID: 7, Price: 2.50}})
	_, after, _ := PriceCart(cart, map[int]Product{7: {ID: 7, Price: 3.00}})

	assert.InDelta(t, 10.00, before, 1e-9)
	assert.InDelta(t, 12.00, after, 1e-9)
}
