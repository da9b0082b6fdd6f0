package building

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/tiendc/go-deepcopy"
	"go.uber.org/zap"
)

// TitleStatus 馆藏中一本书的状态
type TitleStatus struct {
	Title     string
	Available bool
}

// Library 图书馆
// collection: 书名 -> 是否在架；借出的书仍保留键，值为 false
// order: 书名加入顺序，用于稳定输出
type Library struct {
	Building
	collection  map[string]bool
	order       []string
	hasElevator bool
}

func NewLibrary(opts Options, logger *zap.Logger) *Library {
	l := &Library{
		Building:    newBuilding(opts, "library", logger),
		collection:  make(map[string]bool),
		hasElevator: opts.HasElevator,
	}
	l.logger.Info("You have built a library: 📖")
	return l
}

func (l *Library) SetElevator(hasElevator bool) { l.hasElevator = hasElevator }
func (l *Library) HasElevator() bool            { return l.hasElevator }

// AddTitle 加入馆藏并标记为在架；重复加入只会重置为在架
func (l *Library) AddTitle(title string) {
	if _, ok := l.collection[title]; !ok {
		l.order = append(l.order, title)
	}
	l.collection[title] = true
	l.logger.Debug("Title added", zap.String("title", title))
}

// RemoveTitle 从馆藏移除；不存在时只记录错误。总是返回传入的书名
func (l *Library) RemoveTitle(title string) string {
	if !l.ContainsTitle(title) {
		l.logger.Warn("Title does not exist in the collection", zap.String("title", title))
		return title
	}
	delete(l.collection, title)
	l.order = slices.DeleteFunc(l.order, func(t string) bool { return t == title })
	l.logger.Debug("Title removed", zap.String("title", title))
	return title
}

// CheckOut 借出在架的书；不在架或不存在时只记录错误
func (l *Library) CheckOut(title string) {
	if !l.IsAvailable(title) {
		l.logger.Warn("Title is not available", zap.String("title", title))
		return
	}
	l.collection[title] = false
	l.logger.Info("Title checked out", zap.String("title", title))
}

// ReturnBook 归还已借出的书
// 已在架或不在馆藏中都视为无法归还
func (l *Library) ReturnBook(title string) {
	available, ok := l.collection[title]
	if !ok || available {
		l.logger.Warn("Title cannot be returned", zap.String("title", title))
		return
	}
	l.collection[title] = true
	l.logger.Info("Title returned", zap.String("title", title))
}

func (l *Library) ContainsTitle(title string) bool {
	_, ok := l.collection[title]
	return ok
}

// IsAvailable 不在馆藏中的书视为不可借
func (l *Library) IsAvailable(title string) bool {
	return l.collection[title]
}

// Titles 返回按加入顺序排列的书名副本
func (l *Library) Titles() []string {
	var out []string
	if err := deepcopy.Copy(&out, &l.order); err != nil {
		l.logger.Error("Failed to copy titles", zap.Error(err))
		return slices.Clone(l.order)
	}
	return out
}

// Snapshot 按加入顺序返回所有书的状态
func (l *Library) Snapshot() []TitleStatus {
	out := make([]TitleStatus, 0, len(l.order))
	for _, title := range l.order {
		out = append(out, TitleStatus{Title: title, Available: l.collection[title]})
	}
	return out
}

func (l *Library) PrintCollection() {
	tw := tabwriter.NewWriter(l.out, 0, 8, 3, ' ', 0)
	fmt.Fprintln(tw, "Title\tStatus")
	fmt.Fprintln(tw, "-----\t------")
	for _, entry := range l.Snapshot() {
		status := "Available"
		if !entry.Available {
			status = "Not Available"
		}
		fmt.Fprintf(tw, "%s\t%s\n", entry.Title, status)
	}
	if err := tw.Flush(); err != nil {
		l.logger.Error("Failed to write collection", zap.Error(err))
	}
}

func (l *Library) ShowOptions() {
	l.writeOptions("checkOut(title)", "returnBook(title)", "isAvailable(title)", "printCollection()")
}

func (l *Library) GoToFloor(floorNum int) error {
	return l.moveTo(floorNum, l.hasElevator)
}
