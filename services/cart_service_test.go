package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fleur-api/dto"
)

func TestCartTotal(t *testing.T) {
	items := []dto.CartItemDTO{
		{ProductID: "prod_1", Price: 280, Quantity: 2},
		{ProductID: "prod_2", Price: 199.99, Quantity: 1},
	}
	assert.Equal(t, 759.99, cartTotal(items))
}

func TestCartTotalEmpty(t *testing.T) {
	assert.Equal(t, 0.0, cartTotal(nil))
}

func TestCartTotalRoundsOnce(t *testing.T) {
	items := []dto.CartItemDTO{
		{ProductID: "prod_1", Price: 0.335, Quantity: 1},
		{ProductID: "prod_2", Price: 0.335, Quantity: 1},
	}
	// 0.67, not 0.34 + 0.34 from rounding each line first.
	assert.Equal(t, 0.67, cartTotal(items))
}
