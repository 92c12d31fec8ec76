package store

import (
	"github.com/google/uuid"

	"merchplan/internal/model"
)

// seed 写入初始演示数据，与导入前的空白状态区分开
// 门店与商品可直接编辑，事实表留空等待导入
func (s *AppStore) seed() {
	s.stores = []model.Store{
		{ID: uuid.NewString(), Name: "Atlanta Outfitters", City: "Atlanta", State: "GA"},
		{ID: uuid.NewString(), Name: "Chicago Charm Boutique", City: "Chicago", State: "IL"},
		{ID: uuid.NewString(), Name: "Houston Harvest Market", City: "Houston", State: "TX"},
	}
	s.skus = []model.Sku{
		{ID: uuid.NewString(), Name: "Cotton Polo Shirt", Price: 19.99, Cost: 8.5},
		{ID: uuid.NewString(), Name: "Fleece-lined Parka", Price: 49.99, Cost: 20},
	}
}
