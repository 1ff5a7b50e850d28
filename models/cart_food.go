package models

// CartFood is the cart/food association. Its identity is the composite
// (CartID, FoodID) key; the quantity is an attribute of the association,
// never part of its identity.
type CartFood struct {
	CartID  string `gorm:"type:varchar(36);primaryKey"`
	FoodID  string `gorm:"type:varchar(36);primaryKey"`
	UserID  string `gorm:"type:varchar(36);index"`
	FoodQty int

	Food Food `gorm:"foreignKey:FoodID;references:ID"`
}

func (CartFood) TableName() string {
	return "carts_foods"
}

// Is reports whether two associations refer to the same (cart, food) pair.
func (cf *CartFood) Is(other *CartFood) bool {
	return cf.CartID == other.CartID && cf.FoodID == other.FoodID
}

func (cf *CartFood) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"food_id":   cf.FoodID,
		"food_name": cf.Food.Name,
		"food_qty":  cf.FoodQty,
	}
}
