package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shouni/go-craft-kit/pkg/domain"
)

// Memory は ProductStore と OrderStore のインメモリ実装です。
// プロセス内限定で、再起動で消えます。並行アクセスは RWMutex で保護します。
type Memory struct {
	mu       sync.RWMutex
	products map[string]domain.Product
	orders   map[string]domain.Order
}

// NewMemory は空の Memory ストアを返します。
func NewMemory() *Memory {
	return &Memory{
		products: make(map[string]domain.Product),
		orders:   make(map[string]domain.Order),
	}
}

// AddProduct は商品を登録します。ID の重複は誤りです。
func (m *Memory) AddProduct(p domain.Product) error {
	if p.ID == "" {
		return fmt.Errorf("%w: 商品 ID が空です", domain.ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, dup := m.products[p.ID]; dup {
		return fmt.Errorf("%w: 商品 ID が重複しています: %q", domain.ErrInvalidInput, p.ID)
	}
	m.products[p.ID] = p
	return nil
}

// GetProduct は ID で商品を取得します。
func (m *Memory) GetProduct(id string) (domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: 商品 %q", ErrNotFound, id)
	}
	return p, nil
}

// ListProducts は全商品を ID 順で返します。
func (m *Memory) ListProducts() []domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdateProduct は既存の商品を丸ごと置き換えます。
func (m *Memory) UpdateProduct(p domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[p.ID]; !ok {
		return fmt.Errorf("%w: 商品 %q", ErrNotFound, p.ID)
	}
	m.products[p.ID] = p
	return nil
}

// AddOrder は注文を登録します。対象の商品が存在しなければ失敗します。
func (m *Memory) AddOrder(o domain.Order) error {
	if o.ID == "" {
		return fmt.Errorf("%w: 注文 ID が空です", domain.ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, dup := m.orders[o.ID]; dup {
		return fmt.Errorf("%w: 注文 ID が重複しています: %q", domain.ErrInvalidInput, o.ID)
	}
	if _, ok := m.products[o.ProductID]; !ok {
		return fmt.Errorf("%w: 注文対象の商品 %q", ErrNotFound, o.ProductID)
	}
	if o.Status == "" {
		o.Status = domain.OrderPending
	}
	m.orders[o.ID] = o
	return nil
}

// UpdateOrderStatus は注文の状態だけを更新します。
func (m *Memory) UpdateOrderStatus(id string, status domain.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return fmt.Errorf("%w: 注文 %q", ErrNotFound, id)
	}
	o.Status = status
	m.orders[id] = o
	return nil
}

// ListOrdersBySeller は指定した出品者の商品に対する注文を ID 順で返します。
func (m *Memory) ListOrdersBySeller(sellerID string) []domain.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Order
	for _, o := range m.orders {
		p, ok := m.products[o.ProductID]
		if ok && p.SellerID == sellerID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var (
	_ ProductStore = (*Memory)(nil)
	_ OrderStore   = (*Memory)(nil)
)
