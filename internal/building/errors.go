package building

import "errors"

// 楼层导航错误：属于调用方误用，直接返回给调用方，不做吞掉处理
var (
	// ErrNotEntered 尚未调用 Enter() 就在楼层间移动
	ErrNotEntered = errors.New("not inside building")
	// ErrInvalidFloor 目标楼层超出 [1, Floors()]
	ErrInvalidFloor = errors.New("invalid floor number")
	// ErrNoElevator 没有电梯时一次移动超过一层
	ErrNoElevator = errors.New("no elevator")
)
