package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"merchplan/internal/model"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

// AppStore 应用内存状态容器
// 持有门店/商品/周历三个档案表与企划事实表，生命周期随进程
// 所有读写经由显式方法，不暴露内部切片
type AppStore struct {
	stores   []model.Store
	skus     []model.Sku
	calendar []model.CalendarEntry
	facts    []model.FactRow
	mu       sync.RWMutex
}

// NewAppStore 创建带种子数据的状态容器
func NewAppStore() *AppStore {
	s := &AppStore{}
	s.seed()
	return s
}

// NewEmptyAppStore 创建空状态容器（测试用）
func NewEmptyAppStore() *AppStore {
	return &AppStore{}
}

// ---- 门店档案 ----

// ListStores 按显示顺序返回门店列表
func (s *AppStore) ListStores() []model.Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Store, len(s.stores))
	copy(out, s.stores)
	return out
}

// AddStore 新增门店，生成唯一编号并追加到末尾
func (s *AppStore) AddStore(name, city, state string) model.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := model.Store{ID: uuid.NewString(), Name: name, City: city, State: state}
	s.stores = append(s.stores, rec)
	return rec
}

// UpdateStore 更新门店字段
func (s *AppStore) UpdateStore(id, name, city, state string) (model.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.stores {
		if s.stores[i].ID == id {
			s.stores[i].Name = name
			s.stores[i].City = city
			s.stores[i].State = state
			return s.stores[i], nil
		}
	}
	return model.Store{}, ErrNotFound
}

// RemoveStore 删除门店
// 不级联：引用该门店的事实行保留，透视时按占位规则解析
func (s *AppStore) RemoveStore(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.stores {
		if s.stores[i].ID == id {
			s.stores = append(s.stores[:i], s.stores[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ReorderStore 调整门店显示顺序
// 任一下标越界时静默不动作
func (s *AppStore) ReorderStore(fromIndex, toIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.stores)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		return
	}
	rec := s.stores[fromIndex]
	s.stores = append(s.stores[:fromIndex], s.stores[fromIndex+1:]...)
	rest := append([]model.Store{}, s.stores[toIndex:]...)
	s.stores = append(append(s.stores[:toIndex], rec), rest...)
}

// ReplaceStores 批量导入整体替换门店档案（含顺序）
// 外部提供的编号原样保留，缺失时生成
func (s *AppStore) ReplaceStores(records []model.Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Store, 0, len(records))
	for _, r := range records {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		out = append(out, r)
	}
	s.stores = out
}

// StoreLabels 构建 门店编号→显示名 查找表
func (s *AppStore) StoreLabels() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.stores))
	for _, r := range s.stores {
		out[r.ID] = r.Name
	}
	return out
}

// ---- 商品档案 ----

// ListSkus 返回商品列表
func (s *AppStore) ListSkus() []model.Sku {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Sku, len(s.skus))
	copy(out, s.skus)
	return out
}

// AddSku 新增商品
func (s *AppStore) AddSku(name string, price, cost float64) model.Sku {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := model.Sku{ID: uuid.NewString(), Name: name, Price: price, Cost: cost}
	s.skus = append(s.skus, rec)
	return rec
}

// UpdateSku 更新商品字段
func (s *AppStore) UpdateSku(id, name string, price, cost float64) (model.Sku, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.skus {
		if s.skus[i].ID == id {
			s.skus[i].Name = name
			s.skus[i].Price = price
			s.skus[i].Cost = cost
			return s.skus[i], nil
		}
	}
	return model.Sku{}, ErrNotFound
}

// RemoveSku 删除商品，不级联
func (s *AppStore) RemoveSku(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.skus {
		if s.skus[i].ID == id {
			s.skus = append(s.skus[:i], s.skus[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ReplaceSkus 批量导入整体替换商品档案
func (s *AppStore) ReplaceSkus(records []model.Sku) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Sku, 0, len(records))
	for _, r := range records {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		out = append(out, r)
	}
	s.skus = out
}

// ---- 周历 ----

// ListCalendar 返回周历
func (s *AppStore) ListCalendar() []model.CalendarEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.CalendarEntry, len(s.calendar))
	copy(out, s.calendar)
	return out
}

// ReplaceCalendar 重新导入时整体替换周历
func (s *AppStore) ReplaceCalendar(entries []model.CalendarEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CalendarEntry, len(entries))
	copy(out, entries)
	s.calendar = out
}

// ---- 企划事实表 ----

// ListFacts 按导入顺序返回事实行
func (s *AppStore) ListFacts() []model.FactRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.FactRow, len(s.facts))
	copy(out, s.facts)
	return out
}

// SetFacts 导入时整体替换事实表
func (s *AppStore) SetFacts(rows []model.FactRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.FactRow, len(rows))
	copy(out, rows)
	s.facts = out
}

// UpsertFactUnits 单元格编辑回写：按 (门店, SKU, 规范化周) 定位事实行并覆盖销量
// 存在多条同键行时覆盖最后一条（与透视的后写覆盖语义一致），不存在时追加
func (s *AppStore) UpsertFactUnits(storeRef, skuRef, week string, units float64) model.FactRow {
	s.mu.Lock()
	defer s.mu.Unlock()

	normWeek := model.NormalizeWeek(week)
	for i := len(s.facts) - 1; i >= 0; i-- {
		f := &s.facts[i]
		if f.StoreRef == storeRef && f.SkuRef == skuRef && model.NormalizeWeek(f.Week) == normWeek {
			f.SalesUnits = units
			return *f
		}
	}

	rec := model.FactRow{StoreRef: storeRef, SkuRef: skuRef, Week: week, SalesUnits: units}
	s.facts = append(s.facts, rec)
	return rec
}

// FactCount 事实行数
func (s *AppStore) FactCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.facts)
}
