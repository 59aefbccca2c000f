package server

import (
	"github.com/gin-gonic/gin"

	"max.ks1230/finance-tracker/internal/entity/category"
)

type categoryResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Type  string `json:"type"`
}

// listCategories serves the static catalog. ?type=income|expense
// narrows it; anything else returns both lists in display order.
func (s *Server) listCategories(c *gin.Context) {
	catType := c.Query("type")

	var catalog []category.Item
	if catType == category.TypeIncome || catType == category.TypeExpense {
		catalog = category.ByType(catType)
	} else {
		catalog = category.All()
	}

	items := make([]categoryResp, 0, len(catalog))
	for _, item := range catalog {
		items = append(items, categoryResp{
			ID:    item.ID,
			Name:  item.Name,
			Icon:  item.Icon,
			Color: item.Color,
			Type:  item.Type,
		})
	}
	respondOK(c, gin.H{"items": items})
}
