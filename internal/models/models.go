package models

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"uniqueIndex;not null"     json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null"                 json:"name"`
	Category    string  `gorm:"index;not null"           json:"category"`
	Price       float64 `gorm:"not null"                 json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// idx_user_product backs up the merge-or-insert in repo: if two concurrent adds
// slip past the read, the second insert fails instead of leaving a duplicate
// (user, product) row.
type CartItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement"              json:"id"`
	UserID    uint `gorm:"uniqueIndex:idx_user_product;not null" json:"user_id"`
	ProductID uint `gorm:"uniqueIndex:idx_user_product;not null" json:"product_id"`
	Quantity  uint `gorm:"default:1;check:quantity>0"            json:"quantity"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
