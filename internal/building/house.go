package building

import (
	"slices"

	"github.com/tiendc/go-deepcopy"
	"go.uber.org/zap"
)

// House 住宅：住户按入住顺序保存，允许重名
type House struct {
	Building
	residents     []string
	hasDiningRoom bool
	hasElevator   bool
}

func NewHouse(opts Options, logger *zap.Logger) *House {
	h := &House{
		Building:      newBuilding(opts, "house", logger),
		residents:     []string{},
		hasDiningRoom: opts.HasDiningRoom,
		hasElevator:   opts.HasElevator,
	}
	h.logger.Info("You have built a house: 🏠")
	return h
}

func (h *House) SetDiningRoom(hasDiningRoom bool) { h.hasDiningRoom = hasDiningRoom }
func (h *House) HasDiningRoom() bool              { return h.hasDiningRoom }
func (h *House) SetElevator(hasElevator bool)     { h.hasElevator = hasElevator }
func (h *House) HasElevator() bool                { return h.hasElevator }

// NResidents 当前住户数
func (h *House) NResidents() int {
	return len(h.residents)
}

// Residents 返回住户列表副本（按入住顺序）
func (h *House) Residents() []string {
	var out []string
	if err := deepcopy.Copy(&out, &h.residents); err != nil {
		h.logger.Error("Failed to copy residents", zap.Error(err))
		return slices.Clone(h.residents)
	}
	return out
}

// MoveIn 入住，总是成功
func (h *House) MoveIn(name string) {
	h.residents = append(h.residents, name)
	h.logger.Info("Resident moved in", zap.String("resident", name))
}

// MoveInRoom 与 MoveIn 相同；房间号暂不保存也不校验
func (h *House) MoveInRoom(name string, roomNum int) {
	h.residents = append(h.residents, name)
	h.logger.Info("Resident moved in",
		zap.String("resident", name),
		zap.Int("room", roomNum),
	)
}

// MoveOut 搬出第一个同名住户；不是住户时只记录错误，不改变状态
// 无论成功与否都返回传入的名字
func (h *House) MoveOut(name string) string {
	idx := slices.Index(h.residents, name)
	if idx < 0 {
		h.logger.Warn("Not a resident of this house", zap.String("resident", name))
		return name
	}
	h.residents = slices.Delete(h.residents, idx, idx+1)
	h.logger.Info("Resident moved out", zap.String("resident", name))
	return name
}

func (h *House) IsResident(name string) bool {
	return slices.Contains(h.residents, name)
}

func (h *House) ShowOptions() {
	h.writeOptions("moveIn(name)", "moveOut(name)")
}

func (h *House) GoToFloor(floorNum int) error {
	return h.moveTo(floorNum, h.hasElevator)
}
