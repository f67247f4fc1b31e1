package model

import "github.com/google/uuid"

// Category is a named, iconized bucket used to classify expenses.
// The icon is an opaque display hint; nothing outside the presentation
// layer interprets it.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Built-in category ids. These are stable keys and must never change:
// persisted expenses reference them directly.
const (
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategoryEntertainment = "entertainment"
	CategoryShopping      = "shopping"
	CategoryMedical       = "medical"
	CategoryGift          = "gift"
	CategoryBills         = "bills"
	CategoryOther         = "other"
)

// DefaultCategories returns the built-in category set seeded on first run.
func DefaultCategories() []Category {
	return []Category{
		{ID: CategoryFood, Name: "餐饮", Icon: "🍜"},
		{ID: CategoryTransport, Name: "交通", Icon: "🚌"},
		{ID: CategoryEntertainment, Name: "娱乐", Icon: "🎮"},
		{ID: CategoryShopping, Name: "购物", Icon: "🛍️"},
		{ID: CategoryMedical, Name: "医疗", Icon: "💊"},
		{ID: CategoryGift, Name: "人情", Icon: "🎁"},
		{ID: CategoryBills, Name: "缴费", Icon: "💡"},
		{ID: CategoryOther, Name: "其他", Icon: "📦"},
	}
}

// categoryNameIDs maps the localized display names of the seven non-fallback
// built-ins to their ids. Historical import files carry display names, not ids.
var categoryNameIDs = map[string]string{
	"餐饮": CategoryFood,
	"交通": CategoryTransport,
	"娱乐": CategoryEntertainment,
	"购物": CategoryShopping,
	"医疗": CategoryMedical,
	"人情": CategoryGift,
	"缴费": CategoryBills,
}

// CategoryIDForName resolves a localized category name to a built-in id.
// Any unrecognized name resolves to CategoryOther; resolution never fails.
func CategoryIDForName(name string) string {
	if id, ok := categoryNameIDs[name]; ok {
		return id
	}
	return CategoryOther
}

// NewCategory builds a user-defined category with a freshly generated id.
func NewCategory(name, icon string) Category {
	return Category{
		ID:   uuid.NewString(),
		Name: name,
		Icon: icon,
	}
}

// FallbackCategory is the presentation used for expenses whose category id
// no longer resolves, typically because the category was deleted.
func FallbackCategory() Category {
	return Category{ID: CategoryOther, Name: "其他", Icon: "📦"}
}
