package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnLookup_ShouldMatchCaseInsensitively(t *testing.T) {
	item, ok := Lookup("groceries")
	assert.True(t, ok)
	assert.Equal(t, "Groceries", item.Name)

	item, ok = Lookup("  Food & Dining ")
	assert.True(t, ok)
	assert.Equal(t, "food-dining", item.ID)

	item, ok = Lookup("other-income")
	assert.True(t, ok)
	assert.Equal(t, "Other Income", item.Name)
}

func Test_OnLookup_ShouldMissUnknownName(t *testing.T) {
	_, ok := Lookup("Yacht Maintenance")
	assert.False(t, ok)
}

func Test_OnNormalize_ShouldPassUnknownNameThrough(t *testing.T) {
	assert.Equal(t, "Groceries", Normalize("GROCERIES"))
	assert.Equal(t, "Yacht Maintenance", Normalize("Yacht Maintenance"))
}

func Test_OnColorOf_ShouldFallBackToDefaultGrey(t *testing.T) {
	assert.Equal(t, "#F2C94C", ColorOf("Groceries"))
	assert.Equal(t, DefaultColor, ColorOf("Yacht Maintenance"))
}

func Test_OnByType_ShouldKeepDisplayOrder(t *testing.T) {
	income := ByType(TypeIncome)
	assert.Equal(t, "Salary", income[0].Name)
	expense := ByType(TypeExpense)
	assert.Equal(t, "Food & Dining", expense[0].Name)
	for _, item := range income {
		assert.Equal(t, TypeIncome, item.Type)
	}
}

func Test_OnDisplay_ShouldPrefixIconForCatalogCategories(t *testing.T) {
	assert.Equal(t, "🛒 Groceries", Display("groceries"))
	assert.Equal(t, "Yacht Maintenance", Display("Yacht Maintenance"))
}
