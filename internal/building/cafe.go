package building

import (
	"fmt"

	"go.uber.org/zap"
)

// restockAmount 库存不足时每项自动补货的数量
const restockAmount = 20

// Inventory 咖啡馆库存
type Inventory struct {
	CoffeeOunces int // 咖啡（盎司）
	SugarPackets int // 糖包
	Creams       int // 奶油份数
	Cups         int // 杯子
}

func (i Inventory) hasNegative() bool {
	return i.CoffeeOunces < 0 || i.SugarPackets < 0 || i.Creams < 0 || i.Cups < 0
}

// Cafe 咖啡馆：没有电梯，持有四项库存
type Cafe struct {
	Building
	stock Inventory
}

// NewCafe 创建咖啡馆，Options.HasElevator 对咖啡馆无效
func NewCafe(opts Options, logger *zap.Logger) *Cafe {
	c := &Cafe{
		Building: newBuilding(opts, "cafe", logger),
		stock: Inventory{
			CoffeeOunces: 200,
			SugarPackets: 300,
			Creams:       100,
			Cups:         400,
		},
	}
	c.logger.Info("You have built a cafe: ☕")
	return c
}

// SellCoffee 卖出一杯咖啡
// 任意一项需求超过库存时，先对四项库存各补货 restockAmount，然后无条件扣减。
// 缺口大于补货量时库存会变成负数，这里保留该行为并记录告警。
func (c *Cafe) SellCoffee(size, nSugarPackets, nCreams int) {
	if size > c.stock.CoffeeOunces || nSugarPackets > c.stock.SugarPackets || nCreams > c.stock.Creams {
		c.logger.Info("Stock short, restocking before sale",
			zap.Int("size", size),
			zap.Int("sugar_packets", nSugarPackets),
			zap.Int("creams", nCreams),
		)
		c.Restock(restockAmount, restockAmount, restockAmount, restockAmount)
	}

	c.stock.CoffeeOunces -= size
	c.stock.SugarPackets -= nSugarPackets
	c.stock.Creams -= nCreams
	c.stock.Cups--

	if c.stock.hasNegative() {
		c.logger.Warn("Stock below zero after sale",
			zap.Int("coffee_ounces", c.stock.CoffeeOunces),
			zap.Int("sugar_packets", c.stock.SugarPackets),
			zap.Int("creams", c.stock.Creams),
			zap.Int("cups", c.stock.Cups),
		)
	}
}

// Restock 补货，不做上限校验
func (c *Cafe) Restock(nCoffeeOunces, nSugarPackets, nCreams, nCups int) {
	c.stock.CoffeeOunces += nCoffeeOunces
	c.stock.SugarPackets += nSugarPackets
	c.stock.Creams += nCreams
	c.stock.Cups += nCups
}

// Inventory 返回当前库存快照
func (c *Cafe) Inventory() Inventory {
	return c.stock
}

func (c *Cafe) PrintInventory() {
	_, err := fmt.Fprintf(c.out,
		"Coffee backstock = %d ounces\nSugar backstock = %d packets\nCream backstock = %d servings\nCups backstock = %d cups\n",
		c.stock.CoffeeOunces, c.stock.SugarPackets, c.stock.Creams, c.stock.Cups)
	if err != nil {
		c.logger.Error("Failed to write inventory", zap.Error(err))
	}
}

func (c *Cafe) ShowOptions() {
	c.writeOptions("sellCoffee(size, nSugarPackets, nCreams)")
}

// GoToFloor 咖啡馆没有电梯，只能逐层移动
func (c *Cafe) GoToFloor(floorNum int) error {
	return c.moveTo(floorNum, false)
}
