package building

import (
	"io"
	"os"
)

// 未提供时使用的默认值
const (
	DefaultName    = "<Name Unknown>"
	DefaultAddress = "<Address Unknown>"
	DefaultFloors  = 1
)

// Options 建筑构造参数
// 所有字段均可省略，零值由 withDefaults 补齐：
//   - Name:          DefaultName
//   - Address:       DefaultAddress
//   - Floors:        DefaultFloors（小于 1 同样视为未设置）
//   - HasElevator:   false（Cafe 忽略该字段，永远没有电梯）
//   - HasDiningRoom: false（仅 House 使用）
//   - Output:        os.Stdout（PrintInventory / PrintCollection / ShowOptions 的输出）
type Options struct {
	Name          string
	Address       string
	Floors        int
	HasElevator   bool
	HasDiningRoom bool
	Output        io.Writer
}

func (o Options) withDefaults() Options {
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.Address == "" {
		o.Address = DefaultAddress
	}
	if o.Floors < 1 {
		o.Floors = DefaultFloors
	}
	if o.Output == nil {
		o.Output = os.Stdout
	}
	return o
}
