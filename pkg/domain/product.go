package domain

// ProductDetails はAIが商品画像から抽出する商品情報です。
// 各フィールドはスキーマ上必須であり、空は失敗として扱います。
type ProductDetails struct {
	Name        string   `json:"product_name"`
	Description string   `json:"product_description"`
	Story       string   `json:"product_story"`
	Category    Category `json:"predicted_category"`
	// SuggestedPrice は数値文字列です（例: "1200"）。通貨記号は含みません。
	SuggestedPrice string `json:"suggested_price"`
}

// Product はマーケットプレイスに出品される商品です。
type Product struct {
	ID       string
	SellerID string
	Details  ProductDetails
	// ImageURI は商品画像の Data URI または保存先パスです。
	ImageURI string
	Likes    int
	Shares   int
	// Revenue は累計売上の数値文字列です。
	Revenue string
}

// OrderStatus は注文の状態です。
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAccepted  OrderStatus = "accepted"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Order は買い手と商品を結ぶ注文です。
type Order struct {
	ID        string
	ProductID string
	BuyerID   string
	Quantity  int
	Status    OrderStatus
}

// EngagementMetrics はAIレビュー生成に渡す実績指標です。
type EngagementMetrics struct {
	Likes   int
	Shares  int
	Revenue string
}
