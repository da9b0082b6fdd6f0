package building

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// notEntered 表示当前不在建筑内
const notEntered = -1

// Building 建筑公共部分（按值嵌入 Cafe / House / Library）
// 不变量：activeFloor == notEntered 或 1 <= activeFloor <= nFloors
type Building struct {
	id          string
	name        string
	address     string
	nFloors     int
	activeFloor int

	out    io.Writer
	logger *zap.Logger
}

func newBuilding(opts Options, kind string, logger *zap.Logger) Building {
	opts = opts.withDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return Building{
		id:          id,
		name:        opts.Name,
		address:     opts.Address,
		nFloors:     opts.Floors,
		activeFloor: notEntered,
		out:         opts.Output,
		logger: logger.With(
			zap.String("building_id", id),
			zap.String("building_name", opts.Name),
			zap.String("building_type", kind),
		),
	}
}

func (b *Building) ID() string        { return b.id }
func (b *Building) Name() string      { return b.name }
func (b *Building) Address() string   { return b.address }
func (b *Building) Floors() int       { return b.nFloors }
func (b *Building) CurrentFloor() int { return b.activeFloor }

// Inside 是否已经进入建筑
func (b *Building) Inside() bool {
	return b.activeFloor != notEntered
}

// Enter 进入建筑，回到 1 楼（可重复调用）
func (b *Building) Enter() {
	b.activeFloor = 1
	b.logger.Info("Entered building", zap.Int("floor", b.activeFloor))
}

// Exit 离开建筑
func (b *Building) Exit() error {
	if !b.Inside() {
		return fmt.Errorf("%w: cannot exit %s", ErrNotEntered, b.name)
	}
	b.activeFloor = notEntered
	b.logger.Info("Left building")
	return nil
}

// moveTo 三个子类型共用的楼层导航校验
// hasElevator 由具体类型提供：Cafe 恒为 false，House / Library 取自身的电梯标记
func (b *Building) moveTo(floorNum int, hasElevator bool) error {
	if !b.Inside() {
		return fmt.Errorf("%w: must call Enter() before navigating between floors of %s", ErrNotEntered, b.name)
	}
	if floorNum < 1 || floorNum > b.nFloors {
		return fmt.Errorf("%w %d: valid range for %s is 1-%d", ErrInvalidFloor, floorNum, b.name, b.nFloors)
	}
	if !hasElevator && abs(floorNum-b.activeFloor) > 1 {
		return fmt.Errorf("%w in %s: cannot go up or down more than one floor at a time", ErrNoElevator, b.name)
	}

	b.activeFloor = floorNum
	b.logger.Info("Moved to floor", zap.Int("floor", floorNum))
	return nil
}

// ShowOptions 输出基础导航选项
func (b *Building) ShowOptions() {
	b.writeOptions()
}

func (b *Building) writeOptions(extra ...string) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Available options at %s:\n", b.name)
	for _, opt := range append([]string{"enter()", "exit()", "goToFloor(n)"}, extra...) {
		fmt.Fprintf(&sb, " + %s\n", opt)
	}
	if _, err := io.WriteString(b.out, sb.String()); err != nil {
		b.logger.Error("Failed to write options", zap.Error(err))
	}
}

func (b *Building) String() string {
	return fmt.Sprintf("%s is a %d-story building located at %s.", b.name, b.nFloors, b.address)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
