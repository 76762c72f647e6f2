package store

import (
	"errors"

	"github.com/shouni/go-craft-kit/pkg/domain"
)

// ErrNotFound は指定された ID の実体が存在しないことを示します。
var ErrNotFound = errors.New("対象が見つかりませんでした")

// ProductStore は商品の永続化境界です。実装は明示的に構築して注入します。
type ProductStore interface {
	AddProduct(p domain.Product) error
	GetProduct(id string) (domain.Product, error)
	ListProducts() []domain.Product
	UpdateProduct(p domain.Product) error
}

// OrderStore は注文の永続化境界です。
type OrderStore interface {
	AddOrder(o domain.Order) error
	UpdateOrderStatus(id string, status domain.OrderStatus) error
	ListOrdersBySeller(sellerID string) []domain.Order
}
